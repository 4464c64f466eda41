package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
)

// UserService provides registration, session and profile operations
type UserService interface {
	// Register creates a user with a hashed password and no session
	Register(ctx context.Context, username, password, name string) (*domain.User, error)

	// Login verifies credentials and issues a fresh session token,
	// replacing any previous one
	Login(ctx context.Context, username, password string) (string, error)

	// Update changes the present fields of the user's profile
	Update(ctx context.Context, username string, update domain.UserUpdate) (*domain.User, error)

	// Logout clears the user's session token
	Logout(ctx context.Context, username string) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	tokens    auth.TokenGenerator
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenGenerator,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger.With("component", "user_service"),
	}
}

// Register creates a new user. A taken username yields store.ErrUsernameExists,
// whether it is found by the pre-check or by the insert losing a race.
func (s *UserServiceImpl) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	exists, err := s.userStore.Exists(ctx, username)
	if err != nil {
		s.logger.Error("failed to check username",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if exists {
		s.logger.Debug("attempted to register existing username",
			"username", username)
		return nil, store.ErrUsernameExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("username taken during registration",
				"username", username)
			return nil, err
		}
		s.logger.Error("failed to save user",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered",
		"username", username)
	return user, nil
}

// Login verifies the password and stores a new session token.
// Unknown usernames and wrong passwords both yield auth.ErrUnauthorized.
func (s *UserServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login for unknown username",
				"username", username)
			return "", auth.ErrUnauthorized
		}
		s.logger.Error("failed to load user for login",
			"error", err,
			"username", username)
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Debug("login with wrong password",
				"username", username)
			return "", auth.ErrUnauthorized
		}
		s.logger.Error("failed to verify password",
			"error", err,
			"username", username)
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Error("failed to generate session token",
			"error", err,
			"username", username)
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	if err := s.userStore.SetToken(ctx, username, &token); err != nil {
		s.logger.Error("failed to store session token",
			"error", err,
			"username", username)
		return "", fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info("user logged in",
		"username", username)
	return token, nil
}

// Update applies the present fields. A new password is hashed before it is
// stored. An empty update returns the current user unchanged.
func (s *UserServiceImpl) Update(
	ctx context.Context,
	username string,
	update domain.UserUpdate,
) (*domain.User, error) {
	changes := store.UserChanges{Name: update.Name}
	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			s.logger.Error("failed to hash password",
				"error", err,
				"username", username)
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		changes.PasswordHash = &hash
	}

	user, err := s.userStore.Update(ctx, username, changes)
	if err != nil {
		if isExpected(err) {
			s.logger.Debug("user update rejected",
				"error", err,
				"username", username)
		} else {
			s.logger.Error("failed to update user",
				"error", err,
				"username", username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Debug("user updated",
		"username", username,
		"name_changed", update.Name != nil,
		"password_changed", update.Password != nil)
	return user, nil
}

// Logout clears the session token of the user.
func (s *UserServiceImpl) Logout(ctx context.Context, username string) error {
	if err := s.userStore.SetToken(ctx, username, nil); err != nil {
		if isExpected(err) {
			s.logger.Debug("logout for unknown user",
				"username", username)
		} else {
			s.logger.Error("failed to clear session token",
				"error", err,
				"username", username)
		}
		return fmt.Errorf("failed to log out: %w", err)
	}

	s.logger.Info("user logged out",
		"username", username)
	return nil
}
