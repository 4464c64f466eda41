package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing
type MockContactStore struct {
	CreateFn func(ctx context.Context, contact *domain.Contact) error
	GetFn    func(ctx context.Context, owner string, id int64) (*domain.Contact, error)
	UpdateFn func(ctx context.Context, contact *domain.Contact) error
	DeleteFn func(ctx context.Context, owner string, id int64) error
	SearchFn func(ctx context.Context, owner string, filter domain.ContactFilter, page domain.PageRequest) ([]domain.Contact, int64, error)

	mu     sync.Mutex
	nextID int64
	// Contacts is the default backing data, keyed by id.
	Contacts map[int64]domain.Contact
	// Deleted receives the ids of contacts removed by the default Delete,
	// so an address mock can mimic the cascading foreign key.
	Deleted func(id int64)
}

// NewMockContactStore creates a new mock store with initialized defaults
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{Contacts: make(map[int64]domain.Contact)}
}

var _ store.ContactStore = (*MockContactStore)(nil)

// Owned reports whether a contact with id belongs to owner.
func (m *MockContactStore) Owned(owner string, id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Contacts[id]
	return ok && c.Username == owner
}

// Create implements the ContactStore interface
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	contact.ID = m.nextID
	m.Contacts[contact.ID] = *contact
	return nil
}

// Get implements the ContactStore interface
func (m *MockContactStore) Get(ctx context.Context, owner string, id int64) (*domain.Contact, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, owner, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Contacts[id]
	if !ok || c.Username != owner {
		return nil, store.ErrContactNotFound
	}
	return &c, nil
}

// Update implements the ContactStore interface
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Contacts[contact.ID]
	if !ok || c.Username != contact.Username {
		return store.ErrContactNotFound
	}
	m.Contacts[contact.ID] = *contact
	return nil
}

// Delete implements the ContactStore interface
func (m *MockContactStore) Delete(ctx context.Context, owner string, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, owner, id)
	}
	m.mu.Lock()
	c, ok := m.Contacts[id]
	if !ok || c.Username != owner {
		m.mu.Unlock()
		return store.ErrContactNotFound
	}
	delete(m.Contacts, id)
	m.mu.Unlock()

	if m.Deleted != nil {
		m.Deleted(id)
	}
	return nil
}

func containsFold(value *string, needle string) bool {
	return value != nil && strings.Contains(strings.ToLower(*value), strings.ToLower(needle))
}

// Search implements the ContactStore interface
func (m *MockContactStore) Search(
	ctx context.Context,
	owner string,
	filter domain.ContactFilter,
	page domain.PageRequest,
) ([]domain.Contact, int64, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, owner, filter, page)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []domain.Contact{}
	for _, c := range m.Contacts {
		if c.Username != owner {
			continue
		}
		if filter.Name != nil && !containsFold(&c.FirstName, *filter.Name) && !containsFold(c.LastName, *filter.Name) {
			continue
		}
		if filter.Email != nil && !containsFold(c.Email, *filter.Email) {
			continue
		}
		if filter.Phone != nil && !containsFold(c.Phone, *filter.Phone) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := min(page.Offset(), len(matched))
	end := min(start+page.Size, len(matched))
	return matched[start:end], total, nil
}
