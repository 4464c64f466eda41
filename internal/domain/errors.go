package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the application surfaces to a client is classified
// as exactly one of these, checked with errors.Is.
var (
	// ErrValidation is returned when request input violates a declared constraint.
	ErrValidation = errors.New("validation failed")

	// ErrBadRequest is returned for well-formed requests that conflict with
	// existing state, such as registering a taken username.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when credentials or a session token are rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when an entity is absent or not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrInternal is returned for unexpected infrastructure failures.
	ErrInternal = errors.New("internal error")
)

// Error carries a client-facing message together with its kind and an
// optional underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewValidationError returns an ErrValidation-kind error.
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewBadRequestError returns an ErrBadRequest-kind error.
func NewBadRequestError(message string) *Error {
	return &Error{Kind: ErrBadRequest, Message: message}
}

// NewUnauthorizedError returns an ErrUnauthorized-kind error.
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

// NewNotFoundError returns an ErrNotFound-kind error.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// NewInternalError wraps an unexpected failure. The cause is kept for logging
// and never shown to clients.
func NewInternalError(message string, err error) *Error {
	return &Error{Kind: ErrInternal, Message: message, Err: err}
}

// Message returns the client-facing message of err when it is a *Error,
// and the empty string otherwise.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
