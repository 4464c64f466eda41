package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// ContactService manages the contacts of a single owner per call
type ContactService interface {
	// Create stores a contact for owner and returns it with its id
	Create(ctx context.Context, owner string, contact *domain.Contact) (*domain.Contact, error)

	// Get returns the owner's contact with the given id
	Get(ctx context.Context, owner string, id int64) (*domain.Contact, error)

	// Update replaces all mutable fields of the owner's contact
	Update(ctx context.Context, owner string, contact *domain.Contact) (*domain.Contact, error)

	// Delete removes the owner's contact and, through the schema, its addresses
	Delete(ctx context.Context, owner string, id int64) error

	// Search returns one page of the owner's contacts matching the filter
	Search(ctx context.Context, owner string, filter domain.ContactFilter, page domain.PageRequest) (domain.Page[domain.Contact], error)
}

// ContactServiceImpl implements the ContactService interface
type ContactServiceImpl struct {
	contactStore store.ContactStore
	logger       *slog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(contactStore store.ContactStore, logger *slog.Logger) ContactService {
	return &ContactServiceImpl{
		contactStore: contactStore,
		logger:       logger.With("component", "contact_service"),
	}
}

func (s *ContactServiceImpl) logFailure(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if isExpected(err) {
		s.logger.Debug(msg, args...)
		return
	}
	s.logger.Error(msg, args...)
}

// Create implements ContactService. The owner always comes from the caller,
// never from the submitted contact.
func (s *ContactServiceImpl) Create(
	ctx context.Context,
	owner string,
	contact *domain.Contact,
) (*domain.Contact, error) {
	contact.Username = owner
	if err := s.contactStore.Create(ctx, contact); err != nil {
		s.logFailure("failed to create contact", err, "username", owner)
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Debug("contact created",
		"username", owner,
		"contact_id", contact.ID)
	return contact, nil
}

// Get implements ContactService
func (s *ContactServiceImpl) Get(ctx context.Context, owner string, id int64) (*domain.Contact, error) {
	contact, err := s.contactStore.Get(ctx, owner, id)
	if err != nil {
		s.logFailure("failed to get contact", err, "username", owner, "contact_id", id)
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

// Update implements ContactService
func (s *ContactServiceImpl) Update(
	ctx context.Context,
	owner string,
	contact *domain.Contact,
) (*domain.Contact, error) {
	contact.Username = owner
	if err := s.contactStore.Update(ctx, contact); err != nil {
		s.logFailure("failed to update contact", err, "username", owner, "contact_id", contact.ID)
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	s.logger.Debug("contact updated",
		"username", owner,
		"contact_id", contact.ID)
	return contact, nil
}

// Delete implements ContactService
func (s *ContactServiceImpl) Delete(ctx context.Context, owner string, id int64) error {
	if err := s.contactStore.Delete(ctx, owner, id); err != nil {
		s.logFailure("failed to delete contact", err, "username", owner, "contact_id", id)
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.logger.Debug("contact deleted",
		"username", owner,
		"contact_id", id)
	return nil
}

// Search implements ContactService. The page request is normalized before
// it reaches the store.
func (s *ContactServiceImpl) Search(
	ctx context.Context,
	owner string,
	filter domain.ContactFilter,
	page domain.PageRequest,
) (domain.Page[domain.Contact], error) {
	page = page.Normalize()

	contacts, total, err := s.contactStore.Search(ctx, owner, filter, page)
	if err != nil {
		s.logFailure("failed to search contacts", err, "username", owner)
		return domain.Page[domain.Contact]{}, fmt.Errorf("failed to search contacts: %w", err)
	}

	s.logger.Debug("contacts searched",
		"username", owner,
		"page", page.Page,
		"size", page.Size,
		"total", total)
	return domain.NewPage(contacts, page, total), nil
}
