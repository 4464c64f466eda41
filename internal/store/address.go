package store

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// AddressStore defines the interface for address persistence. Addresses are
// addressed by (contact id, address id); callers must establish ownership of
// the contact with ContactOwned before any other call.
type AddressStore interface {
	// ContactOwned reports whether exactly one contact matches id and owner.
	ContactOwned(ctx context.Context, owner string, contactID int64) (bool, error)

	// Create inserts the address and sets its generated ID.
	Create(ctx context.Context, address *domain.Address) error

	// Get retrieves an address of the given contact.
	// Returns ErrAddressNotFound when no row matches.
	Get(ctx context.Context, contactID, id int64) (*domain.Address, error)

	// Update replaces all mutable fields of the address matching
	// address.ID and address.ContactID.
	// Returns ErrAddressNotFound when no row matches.
	Update(ctx context.Context, address *domain.Address) error

	// Delete removes the address matching id and contact.
	// Returns ErrAddressNotFound when no row matches.
	Delete(ctx context.Context, contactID, id int64) error

	// List returns every address of the contact ordered by id.
	List(ctx context.Context, contactID int64) ([]domain.Address, error)
}
