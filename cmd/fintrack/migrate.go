package main

import (
	"database/sql"
	"errors"
	"fmt"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var errMigrateNeedsPostgres = errors.New("migrate requires DB_DRIVER=postgres; sqlite schemas are created by GORM AutoMigrate on serve")

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
		Long: `Applies or reverts the SQL migrations under MIGRATIONS_PATH
(default db/migrations) with golang-migrate.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrationRunner(func(_ *cobra.Command, runner *database.MigrationRunner) error {
			return runner.RunMigrations()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert every applied migration",
		Args:  cobra.NoArgs,
		RunE: withMigrationRunner(func(_ *cobra.Command, runner *database.MigrationRunner) error {
			return runner.RollbackMigrations()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: withMigrationRunner(func(cmd *cobra.Command, runner *database.MigrationRunner) error {
			version, dirty, err := runner.GetMigrationStatus()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		}),
	})

	return cmd
}

func withMigrationRunner(fn func(*cobra.Command, *database.MigrationRunner) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if cfg.Database.Driver != config.DriverPostgres {
			return errMigrateNeedsPostgres
		}

		sqlDB, err := sql.Open("postgres", cfg.Database.URL())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer sqlDB.Close()

		runner := database.NewMigrationRunnerFromConfig(sqlDB, &cfg.Database)
		if err := runner.WaitForDatabase(); err != nil {
			return err
		}
		return fn(cmd, runner)
	}
}
