package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/phrazzld/contacts-api/internal/platform/logger"
	"github.com/phrazzld/contacts-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "] [args]",
		Short: "Run database migrations",
		Long: `Run a goose command against the embedded PostgreSQL migrations.
Defaults to "up", which applies every pending migration.`,
		ValidArgs: postgres.MigrationCommands,
		Args:      cobra.MaximumNArgs(2),
		RunE:      runMigrate,
	}
}

// migrationCommand splits positional args into the goose command and its
// arguments, defaulting to "up".
func migrationCommand(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "up", nil, nil
	}
	if slices.Contains(postgres.MigrationCommands, args[0]) {
		return args[0], args[1:], nil
	}
	return "", nil, fmt.Errorf("unknown migration command %q (want one of %s)",
		args[0], strings.Join(postgres.MigrationCommands, ", "))
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command, rest, err := migrationCommand(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx := commandContext(cmd)
	pool, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log, command, rest...); err != nil {
		return err
	}

	cmd.Printf("migrate %s completed\n", command)
	return nil
}
