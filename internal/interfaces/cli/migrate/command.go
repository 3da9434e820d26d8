package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerpos/ledgerpos/internal/infrastructure/database"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/migration"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/cli/bootstrap"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, inspect and roll back the local database schema.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initMigrator() (*migration.Migrator, logger.Interface, error) {
	cfg, log, err := bootstrap.InitWithDatabase(bootstrap.ResolveEnv(env))
	if err != nil {
		return nil, nil, err
	}

	migrator, err := migration.NewMigrator(cfg.Database.Driver, log)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return migrator, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	migrator, log, err := initMigrator()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrator.Up(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	migrator, log, err := initMigrator()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrator.Down(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	migrator, log, err := initMigrator()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := migrator.Version(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Infow("current migration version", "version", version)

	return migrator.Status(database.Get())
}
