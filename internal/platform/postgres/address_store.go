package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

const addressColumns = "id, street, city, province, country, postal_code, contact_id"

// AddressStore implements the store.AddressStore interface
// using a PostgreSQL database as the storage backend.
type AddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAddressStore creates a new PostgreSQL implementation of the AddressStore interface.
// If logger is nil, a default logger will be used.
func NewAddressStore(db store.DBTX, logger *slog.Logger) *AddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

// Ensure AddressStore implements store.AddressStore interface
var _ store.AddressStore = (*AddressStore)(nil)

// ContactOwned implements store.AddressStore.ContactOwned
func (s *AddressStore) ContactOwned(ctx context.Context, owner string, contactID int64) (bool, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contacts WHERE id = $1 AND username = $2`,
		contactID, owner,
	).Scan(&count)
	if err != nil {
		return false, wrapError("address", "check_parent", "failed to count contacts", err)
	}
	return count == 1, nil
}

// Create implements store.AddressStore.Create
func (s *AddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRow(ctx,
		`INSERT INTO addresses (street, city, province, country, postal_code, contact_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		address.Street, address.City, address.Province,
		address.Country, address.PostalCode, address.ContactID,
	).Scan(&address.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			// The parent was deleted after the ownership check.
			return store.ErrContactNotFound
		}
		log.Error("failed to create address",
			slog.Int64("contact_id", address.ContactID),
			slog.String("error", err.Error()))
		return wrapError("address", "create", "failed to insert address", err)
	}

	log.Info("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("contact_id", address.ContactID))
	return nil
}

func scanAddress(row interface{ Scan(...any) error }) (domain.Address, error) {
	var a domain.Address
	err := row.Scan(&a.ID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode, &a.ContactID)
	return a, err
}

// Get implements store.AddressStore.Get
func (s *AddressStore) Get(ctx context.Context, contactID, id int64) (*domain.Address, error) {
	a, err := scanAddress(s.db.QueryRow(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE id = $1 AND contact_id = $2`,
		id, contactID,
	))
	if err != nil {
		if IsNoRows(err) {
			return nil, store.ErrAddressNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get address",
			slog.Int64("address_id", id),
			slog.String("error", err.Error()))
		return nil, wrapError("address", "get", "failed to select address", err)
	}
	return &a, nil
}

// Update implements store.AddressStore.Update
func (s *AddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.db.Exec(ctx,
		`UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
		WHERE id = $6 AND contact_id = $7`,
		address.Street, address.City, address.Province, address.Country, address.PostalCode,
		address.ID, address.ContactID,
	)
	if err != nil {
		log.Error("failed to update address",
			slog.Int64("address_id", address.ID),
			slog.String("error", err.Error()))
		return wrapError("address", "update", "failed to update address", err)
	}
	if err := CheckRowsAffected(tag, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address updated", slog.Int64("address_id", address.ID))
	return nil
}

// Delete implements store.AddressStore.Delete
func (s *AddressStore) Delete(ctx context.Context, contactID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.db.Exec(ctx,
		`DELETE FROM addresses WHERE id = $1 AND contact_id = $2`,
		id, contactID,
	)
	if err != nil {
		log.Error("failed to delete address",
			slog.Int64("address_id", id),
			slog.String("error", err.Error()))
		return wrapError("address", "delete", "failed to delete address", err)
	}
	if err := CheckRowsAffected(tag, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address deleted", slog.Int64("address_id", id))
	return nil
}

// List implements store.AddressStore.List
func (s *AddressStore) List(ctx context.Context, contactID int64) ([]domain.Address, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+addressColumns+` FROM addresses WHERE contact_id = $1 ORDER BY id`,
		contactID,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list addresses",
			slog.Int64("contact_id", contactID),
			slog.String("error", err.Error()))
		return nil, wrapError("address", "list", "failed to select addresses", err)
	}
	defer rows.Close()

	addresses := []domain.Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, wrapError("address", "list", "failed to scan address", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("address", "list", "failed to iterate addresses", err)
	}
	return addresses, nil
}
