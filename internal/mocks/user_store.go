package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	ExistsFn        func(ctx context.Context, username string) (bool, error)
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	GetByTokenFn    func(ctx context.Context, token string) (*domain.User, error)
	SetTokenFn      func(ctx context.Context, username string, token *string) error
	UpdateFn        func(ctx context.Context, username string, changes store.UserChanges) (*domain.User, error)

	mu sync.Mutex
	// Users is the default backing data, keyed by username.
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

var _ store.UserStore = (*MockUserStore)(nil)

func copyUser(u *domain.User) *domain.User {
	c := *u
	if u.Token != nil {
		t := *u.Token
		c.Token = &t
	}
	return &c
}

// Exists implements the UserStore interface
func (m *MockUserStore) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Users[username]
	return ok, nil
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	user.Token = nil
	m.Users[user.Username] = copyUser(user)
	return nil
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return copyUser(user), nil
}

// GetByToken implements the UserStore interface
func (m *MockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.Users {
		if user.Token != nil && *user.Token == token {
			return copyUser(user), nil
		}
	}
	return nil, store.ErrUserNotFound
}

// SetToken implements the UserStore interface
func (m *MockUserStore) SetToken(ctx context.Context, username string, token *string) error {
	if m.SetTokenFn != nil {
		return m.SetTokenFn(ctx, username, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[username]
	if !ok {
		return store.ErrUserNotFound
	}
	if token == nil {
		user.Token = nil
	} else {
		t := *token
		user.Token = &t
	}
	return nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, username string, changes store.UserChanges) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, username, changes)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	if changes.Name != nil {
		user.Name = *changes.Name
	}
	if changes.PasswordHash != nil {
		user.PasswordHash = *changes.PasswordHash
	}
	return copyUser(user), nil
}
