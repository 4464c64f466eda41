package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/store"
)

// AddressService manages the addresses of contacts. Every operation fails
// with store.ErrContactNotFound unless the contact belongs to owner.
type AddressService interface {
	Create(ctx context.Context, owner string, address *domain.Address) (*domain.Address, error)
	Get(ctx context.Context, owner string, contactID, id int64) (*domain.Address, error)
	Update(ctx context.Context, owner string, address *domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, owner string, contactID, id int64) error
	List(ctx context.Context, owner string, contactID int64) ([]domain.Address, error)
}

// AddressServiceImpl implements the AddressService interface
type AddressServiceImpl struct {
	addressStore store.AddressStore
	logger       *slog.Logger
}

// NewAddressService creates a new AddressService
func NewAddressService(addressStore store.AddressStore, logger *slog.Logger) AddressService {
	return &AddressServiceImpl{
		addressStore: addressStore,
		logger:       logger.With("component", "address_service"),
	}
}

// checkParentOwned fails with store.ErrContactNotFound unless exactly one
// contact matches contactID and owner.
func (s *AddressServiceImpl) checkParentOwned(ctx context.Context, owner string, contactID int64) error {
	owned, err := s.addressStore.ContactOwned(ctx, owner, contactID)
	if err != nil {
		s.logger.Error("failed to check contact ownership",
			"error", err,
			"username", owner,
			"contact_id", contactID)
		return err
	}
	if !owned {
		s.logger.Debug("contact not owned",
			"username", owner,
			"contact_id", contactID)
		return store.ErrContactNotFound
	}
	return nil
}

func (s *AddressServiceImpl) logFailure(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if isExpected(err) {
		s.logger.Debug(msg, args...)
		return
	}
	s.logger.Error(msg, args...)
}

// Create implements AddressService
func (s *AddressServiceImpl) Create(
	ctx context.Context,
	owner string,
	address *domain.Address,
) (*domain.Address, error) {
	if err := s.checkParentOwned(ctx, owner, address.ContactID); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	if err := s.addressStore.Create(ctx, address); err != nil {
		s.logFailure("failed to create address", err, "contact_id", address.ContactID)
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	s.logger.Debug("address created",
		"contact_id", address.ContactID,
		"address_id", address.ID)
	return address, nil
}

// Get implements AddressService
func (s *AddressServiceImpl) Get(
	ctx context.Context,
	owner string,
	contactID, id int64,
) (*domain.Address, error) {
	if err := s.checkParentOwned(ctx, owner, contactID); err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	address, err := s.addressStore.Get(ctx, contactID, id)
	if err != nil {
		s.logFailure("failed to get address", err, "contact_id", contactID, "address_id", id)
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return address, nil
}

// Update implements AddressService
func (s *AddressServiceImpl) Update(
	ctx context.Context,
	owner string,
	address *domain.Address,
) (*domain.Address, error) {
	if err := s.checkParentOwned(ctx, owner, address.ContactID); err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	if err := s.addressStore.Update(ctx, address); err != nil {
		s.logFailure("failed to update address", err, "contact_id", address.ContactID, "address_id", address.ID)
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	s.logger.Debug("address updated",
		"contact_id", address.ContactID,
		"address_id", address.ID)
	return address, nil
}

// Delete implements AddressService
func (s *AddressServiceImpl) Delete(ctx context.Context, owner string, contactID, id int64) error {
	if err := s.checkParentOwned(ctx, owner, contactID); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}

	if err := s.addressStore.Delete(ctx, contactID, id); err != nil {
		s.logFailure("failed to delete address", err, "contact_id", contactID, "address_id", id)
		return fmt.Errorf("failed to delete address: %w", err)
	}

	s.logger.Debug("address deleted",
		"contact_id", contactID,
		"address_id", id)
	return nil
}

// List implements AddressService
func (s *AddressServiceImpl) List(ctx context.Context, owner string, contactID int64) ([]domain.Address, error) {
	if err := s.checkParentOwned(ctx, owner, contactID); err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	addresses, err := s.addressStore.List(ctx, contactID)
	if err != nil {
		s.logger.Error("failed to list addresses",
			"error", err,
			"contact_id", contactID)
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}
