package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

const flagMigrate = "migrate"

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server. With --migrate, pending database
migrations are applied before the server starts accepting requests.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			migrate, err := cmd.Flags().GetBool(flagMigrate)
			if err != nil {
				return err
			}
			return runServe(cmd, migrate)
		},
	}
	cmd.Flags().Bool(flagMigrate, false, "apply pending migrations before serving")
	return cmd
}

func runServe(cmd *cobra.Command, migrate bool) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"max_conns", cfg.Database.MaxConns)

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if migrate {
		if err := postgres.Migrate(ctx, pool, log, "up"); err != nil {
			pool.Close()
			return err
		}
	}

	app := newApplication(cfg, log, pool)
	defer app.cleanup()

	return app.startHTTPServer(ctx, app.setupRouter())
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute (as in tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
