package main

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/contacts-api/internal/api"
	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/phrazzld/contacts-api/internal/service"
	"github.com/phrazzld/contacts-api/internal/service/auth"
	"github.com/phrazzld/contacts-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	contactStore store.ContactStore
	addressStore store.AddressStore

	authenticator auth.Authenticator
	handlers      api.Handlers

	registry *prometheus.Registry
}

// newApplication creates an application backed by PostgreSQL stores on pool.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *application {
	app := &application{
		config:       cfg,
		logger:       logger,
		pool:         pool,
		userStore:    postgres.NewUserStore(pool, logger),
		contactStore: postgres.NewContactStore(pool, logger),
		addressStore: postgres.NewAddressStore(pool, logger),
	}
	app.initServices()
	return app
}

// initServices builds services, handlers and the metrics registry from the
// stores already set on app.
func (app *application) initServices() {
	hasher := auth.NewBcryptHasher(app.config.Auth.BcryptCost)

	app.authenticator = auth.NewSessionAuthenticator(app.userStore, app.logger)
	app.handlers = api.Handlers{
		Users: api.NewUserHandler(service.NewUserService(
			app.userStore, hasher, auth.UUIDTokenGenerator{}, app.logger)),
		Contacts:  api.NewContactHandler(service.NewContactService(app.contactStore, app.logger)),
		Addresses: api.NewAddressHandler(service.NewAddressService(app.addressStore, app.logger)),
	}

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}
	app.logger.Info("application shutdown completed")
}
