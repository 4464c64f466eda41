package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

const contactColumns = "id, first_name, last_name, email, phone, username"

// ContactStore implements the store.ContactStore interface
// using a PostgreSQL database as the storage backend.
type ContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewContactStore creates a new PostgreSQL implementation of the ContactStore interface.
// If logger is nil, a default logger will be used.
func NewContactStore(db store.DBTX, logger *slog.Logger) *ContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure ContactStore implements store.ContactStore interface
var _ store.ContactStore = (*ContactStore)(nil)

// Create implements store.ContactStore.Create
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRow(ctx,
		`INSERT INTO contacts (first_name, last_name, email, phone, username)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.Username,
	).Scan(&contact.ID)
	if err != nil {
		log.Error("failed to create contact",
			slog.String("username", contact.Username),
			slog.String("error", err.Error()))
		return wrapError("contact", "create", "failed to insert contact", err)
	}

	log.Info("contact created",
		slog.Int64("contact_id", contact.ID),
		slog.String("username", contact.Username))
	return nil
}

// Get implements store.ContactStore.Get
func (s *ContactStore) Get(ctx context.Context, owner string, id int64) (*domain.Contact, error) {
	var c domain.Contact
	err := s.db.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1 AND username = $2`,
		id, owner,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Username)
	if err != nil {
		if IsNoRows(err) {
			return nil, store.ErrContactNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get contact",
			slog.Int64("contact_id", id),
			slog.String("error", err.Error()))
		return nil, wrapError("contact", "get", "failed to select contact", err)
	}
	return &c, nil
}

// Update implements store.ContactStore.Update
func (s *ContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.db.Exec(ctx,
		`UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4
		WHERE id = $5 AND username = $6`,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.ID, contact.Username,
	)
	if err != nil {
		log.Error("failed to update contact",
			slog.Int64("contact_id", contact.ID),
			slog.String("error", err.Error()))
		return wrapError("contact", "update", "failed to update contact", err)
	}
	if err := CheckRowsAffected(tag, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Info("contact updated", slog.Int64("contact_id", contact.ID))
	return nil
}

// Delete implements store.ContactStore.Delete
func (s *ContactStore) Delete(ctx context.Context, owner string, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.db.Exec(ctx,
		`DELETE FROM contacts WHERE id = $1 AND username = $2`,
		id, owner,
	)
	if err != nil {
		log.Error("failed to delete contact",
			slog.Int64("contact_id", id),
			slog.String("error", err.Error()))
		return wrapError("contact", "delete", "failed to delete contact", err)
	}
	if err := CheckRowsAffected(tag, store.ErrContactNotFound); err != nil {
		return err
	}

	log.Info("contact deleted", slog.Int64("contact_id", id))
	return nil
}

// searchConditions builds the predicate shared by the count and page queries.
// The owner match is always present; each given filter adds a
// case-insensitive substring match. NULL columns never match.
func searchConditions(owner string, filter domain.ContactFilter) *conditions {
	c := &conditions{}
	c.add("username = " + c.bind(owner))

	if filter.Name != nil {
		p := c.bind(containsPattern(*filter.Name))
		c.add("(first_name ILIKE " + p + " OR last_name ILIKE " + p + ")")
	}
	if filter.Email != nil {
		c.add("email ILIKE " + c.bind(containsPattern(*filter.Email)))
	}
	if filter.Phone != nil {
		c.add("phone ILIKE " + c.bind(containsPattern(*filter.Phone)))
	}
	return c
}

// Search implements store.ContactStore.Search
func (s *ContactStore) Search(
	ctx context.Context,
	owner string,
	filter domain.ContactFilter,
	page domain.PageRequest,
) ([]domain.Contact, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cond := searchConditions(owner, filter)
	where := cond.where()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+where, cond.args...).Scan(&total); err != nil {
		log.Error("failed to count contacts", slog.String("error", err.Error()))
		return nil, 0, wrapError("contact", "search", "failed to count contacts", err)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts` + where +
		` ORDER BY id LIMIT ` + cond.bind(page.Size) + ` OFFSET ` + cond.bind(page.Offset())

	rows, err := s.db.Query(ctx, query, cond.args...)
	if err != nil {
		log.Error("failed to search contacts", slog.String("error", err.Error()))
		return nil, 0, wrapError("contact", "search", "failed to select contacts", err)
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0, page.Size)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Username); err != nil {
			return nil, 0, wrapError("contact", "search", "failed to scan contact", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapError("contact", "search", "failed to iterate contacts", err)
	}

	log.Debug("contacts searched",
		slog.Int("page", page.Page),
		slog.Int("size", page.Size),
		slog.Int64("total", total),
		slog.Int("returned", len(contacts)))
	return contacts, total, nil
}
