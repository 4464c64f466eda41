package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing
type MockAddressStore struct {
	ContactOwnedFn func(ctx context.Context, owner string, contactID int64) (bool, error)
	CreateFn       func(ctx context.Context, address *domain.Address) error
	GetFn          func(ctx context.Context, contactID, id int64) (*domain.Address, error)
	UpdateFn       func(ctx context.Context, address *domain.Address) error
	DeleteFn       func(ctx context.Context, contactID, id int64) error
	ListFn         func(ctx context.Context, contactID int64) ([]domain.Address, error)

	// Contacts answers the default ContactOwned.
	Contacts *MockContactStore

	mu     sync.Mutex
	nextID int64
	// Addresses is the default backing data, keyed by id.
	Addresses map[int64]domain.Address
}

// NewMockAddressStore creates a mock store whose ownership checks consult
// contacts. Deleting a contact from contacts also removes its addresses.
func NewMockAddressStore(contacts *MockContactStore) *MockAddressStore {
	m := &MockAddressStore{
		Contacts:  contacts,
		Addresses: make(map[int64]domain.Address),
	}
	if contacts != nil {
		contacts.Deleted = m.removeContact
	}
	return m
}

var _ store.AddressStore = (*MockAddressStore)(nil)

func (m *MockAddressStore) removeContact(contactID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range m.Addresses {
		if a.ContactID == contactID {
			delete(m.Addresses, id)
		}
	}
}

// ContactOwned implements the AddressStore interface
func (m *MockAddressStore) ContactOwned(ctx context.Context, owner string, contactID int64) (bool, error) {
	if m.ContactOwnedFn != nil {
		return m.ContactOwnedFn(ctx, owner, contactID)
	}
	if m.Contacts == nil {
		return false, nil
	}
	return m.Contacts.Owned(owner, contactID), nil
}

// Create implements the AddressStore interface
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	address.ID = m.nextID
	m.Addresses[address.ID] = *address
	return nil
}

// Get implements the AddressStore interface
func (m *MockAddressStore) Get(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, contactID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Addresses[id]
	if !ok || a.ContactID != contactID {
		return nil, store.ErrAddressNotFound
	}
	return &a, nil
}

// Update implements the AddressStore interface
func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Addresses[address.ID]
	if !ok || a.ContactID != address.ContactID {
		return store.ErrAddressNotFound
	}
	m.Addresses[address.ID] = *address
	return nil
}

// Delete implements the AddressStore interface
func (m *MockAddressStore) Delete(ctx context.Context, contactID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, contactID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.Addresses[id]
	if !ok || a.ContactID != contactID {
		return store.ErrAddressNotFound
	}
	delete(m.Addresses, id)
	return nil
}

// List implements the AddressStore interface
func (m *MockAddressStore) List(ctx context.Context, contactID int64) ([]domain.Address, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, contactID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	list := []domain.Address{}
	for _, a := range m.Addresses {
		if a.ContactID == contactID {
			list = append(list, a)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
