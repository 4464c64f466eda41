package store

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// ContactStore defines the interface for contact persistence. Every
// operation is scoped to the owning username.
type ContactStore interface {
	// Create inserts the contact and sets its generated ID.
	Create(ctx context.Context, contact *domain.Contact) error

	// Get retrieves a contact by id and owner.
	// Returns ErrContactNotFound when no row matches both.
	Get(ctx context.Context, owner string, id int64) (*domain.Contact, error)

	// Update replaces all mutable fields of the contact matching
	// contact.ID and contact.Username.
	// Returns ErrContactNotFound when no row matches both.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes the contact matching id and owner.
	// Returns ErrContactNotFound when no row matches both.
	Delete(ctx context.Context, owner string, id int64) error

	// Search returns one page of the owner's contacts matching the filter,
	// ordered by id, together with the total number of matches.
	Search(ctx context.Context, owner string, filter domain.ContactFilter, page domain.PageRequest) ([]domain.Contact, int64, error)
}
