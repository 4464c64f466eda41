package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

// Authenticator resolves a presented session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// SessionAuthenticator looks session tokens up in the user store.
type SessionAuthenticator struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewSessionAuthenticator creates a SessionAuthenticator.
func NewSessionAuthenticator(users store.UserStore, logger *slog.Logger) *SessionAuthenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionAuthenticator{
		users:  users,
		logger: logger.With(slog.String("component", "session_authenticator")),
	}
}

var _ Authenticator = (*SessionAuthenticator)(nil)

// Authenticate returns the user whose current token equals token.
// An empty token or one held by no user yields ErrUnauthorized.
func (a *SessionAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	user, err := a.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			logger.FromContextOrDefault(ctx, a.logger).Debug("unknown session token")
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}
	return user, nil
}
