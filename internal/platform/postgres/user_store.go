package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/store"
)

const userColumns = "username, password, name, token"

// UserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore interface.
// If logger is nil, a default logger will be used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Exists implements store.UserStore.Exists
func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE username = $1`,
		username,
	).Scan(&count)
	if err != nil {
		return false, wrapError("user", "exists", "failed to count users", err)
	}
	return count > 0, nil
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.Exec(ctx,
		`INSERT INTO users (username, password, name, token) VALUES ($1, $2, $3, NULL)`,
		user.Username, user.PasswordHash, user.Name,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username taken on insert", slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		return wrapError("user", "create", "failed to insert user", err)
	}

	user.Token = nil
	log.Info("user created", slog.String("username", user.Username))
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)
	return s.scanUser(ctx, row, "get")
}

// GetByToken implements store.UserStore.GetByToken
func (s *UserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE token = $1`,
		token,
	)
	return s.scanUser(ctx, row, "get_by_token")
}

// SetToken implements store.UserStore.SetToken
func (s *UserStore) SetToken(ctx context.Context, username string, token *string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tag, err := s.db.Exec(ctx,
		`UPDATE users SET token = $1 WHERE username = $2`,
		token, username,
	)
	if err != nil {
		return wrapError("user", "set_token", "failed to update token", err)
	}
	if err := CheckRowsAffected(tag, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Debug("session token updated",
		slog.String("username", username),
		slog.Bool("cleared", token == nil))
	return nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, username string, changes store.UserChanges) (*domain.User, error) {
	if changes.IsEmpty() {
		return s.GetByUsername(ctx, username)
	}

	var a assignments
	if changes.Name != nil {
		a.set("name", *changes.Name)
	}
	if changes.PasswordHash != nil {
		a.set("password", *changes.PasswordHash)
	}

	query := `UPDATE users SET ` + a.clause() +
		` WHERE username = ` + a.bind(username) +
		` RETURNING ` + userColumns

	return s.scanUser(ctx, s.db.QueryRow(ctx, query, a.args...), "update")
}

func (s *UserStore) scanUser(ctx context.Context, row interface{ Scan(...any) error }, operation string) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.Username, &user.PasswordHash, &user.Name, &user.Token)
	if err != nil {
		if IsNoRows(err) {
			return nil, store.ErrUserNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to read user",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, wrapError("user", operation, "failed to read user", err)
	}
	return &user, nil
}
