package mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher without bcrypt's cost.
// Hashes are the plaintext with a "hashed:" prefix.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// HashCallCount tracks how many times Hash was called
	HashCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if strings.TrimPrefix(hashedPassword, "hashed:") != password {
		return auth.ErrPasswordMismatch
	}
	return nil
}

// MockTokenGenerator implements auth.TokenGenerator with a counter so
// every token is distinct and predictable.
type MockTokenGenerator struct {
	GenerateFn func() (string, error)
	count      int
}

var _ auth.TokenGenerator = (*MockTokenGenerator)(nil)

// Generate implements the auth.TokenGenerator interface
func (m *MockTokenGenerator) Generate() (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn()
	}
	m.count++
	return fmt.Sprintf("token-%d", m.count), nil
}

// MockAuthenticator implements auth.Authenticator for testing
type MockAuthenticator struct {
	AuthenticateFn func(ctx context.Context, token string) (*domain.User, error)
	// Tokens maps accepted tokens to users when AuthenticateFn is nil.
	Tokens map[string]*domain.User
}

var _ auth.Authenticator = (*MockAuthenticator)(nil)

// Authenticate implements the auth.Authenticator interface
func (m *MockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, token)
	}
	if user, ok := m.Tokens[token]; ok && token != "" {
		return user, nil
	}
	return nil, auth.ErrUnauthorized
}
