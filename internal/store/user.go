package store

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// UserChanges holds the columns an update may touch. Nil fields are left as stored.
type UserChanges struct {
	Name         *string
	PasswordHash *string
}

// IsEmpty reports whether no column would change.
func (c UserChanges) IsEmpty() bool {
	return c.Name == nil && c.PasswordHash == nil
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Exists reports whether a user with the given username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Create saves a new user with a null session token.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by primary key.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user holding the given session token.
	// Returns ErrUserNotFound if no user holds it.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// SetToken overwrites the session token; a nil token logs the user out.
	// Returns ErrUserNotFound if no row was affected.
	SetToken(ctx context.Context, username string, token *string) error

	// Update applies the non-nil changes and returns the stored user.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, username string, changes UserChanges) (*domain.User, error)
}
