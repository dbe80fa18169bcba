package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCommands = []string{"up", "down", "status", "version"}

// newRootCmd creates the root command. Running it without a subcommand
// starts the server.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "workshop-api",
		Short:         "WorkShop API - tasks and Pomodoro session logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newHashPasswordCmd())

	return cmd
}

// newServeCmd creates the serve subcommand.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Load configuration, open the database, apply pending migrations when
database.auto_migrate is set, and serve the HTTP API until SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

// newMigrateCmd creates the migrate subcommand.
func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "Run database migrations",
		Long:      `Run goose migrations against the configured database. Defaults to "up".`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			return runMigrate(cmd.Context(), command, cmd)
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := openAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

func runMigrate(ctx context.Context, command string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := openAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
		}
	}()

	return runMigrationCommand(ctx, db, command, cmd.OutOrStdout())
}
