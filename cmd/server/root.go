package main

import (
	"github.com/phrazzld/contacts-api/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Without a subcommand it serves the API.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts-api",
		Short: "Contact management REST API",
		Long: `contacts-api serves a REST API for managing personal contacts
and their addresses, backed by PostgreSQL.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, false)
		},
	}

	// Global flags; unset flags leave file and environment values in place.
	flags := cmd.PersistentFlags()
	flags.String(config.FlagConfig, "", "config file path (default ./config.yaml when present)")
	flags.Int(config.FlagPort, 0, "HTTP listen port")
	flags.String(config.FlagLogLevel, "", "log level (debug, info, warn, error)")
	flags.String(config.FlagDatabaseURL, "", "PostgreSQL connection URL")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
