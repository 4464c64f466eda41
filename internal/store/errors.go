package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// Entity-specific errors returned by store implementations. Their messages
// are shown to clients verbatim.
var (
	// ErrUserNotFound indicates that no user matched the lookup.
	ErrUserNotFound = domain.NewNotFoundError("user is not found")

	// ErrContactNotFound indicates that no contact matched both id and owner.
	ErrContactNotFound = domain.NewNotFoundError("contact is not found")

	// ErrAddressNotFound indicates that no address matched both id and contact.
	ErrAddressNotFound = domain.NewNotFoundError("address is not found")

	// ErrUsernameExists indicates that the username is already registered.
	ErrUsernameExists = domain.NewBadRequestError("Username already exists")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// IsDuplicateError checks if the error reports a uniqueness conflict.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrUsernameExists)
}

// StoreError is a custom error type for unexpected store failures with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "contact")
	Operation string // The operation that failed (e.g., "create", "search")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
