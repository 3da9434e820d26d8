package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerpos/ledgerpos/internal/infrastructure/database"
	"github.com/ledgerpos/ledgerpos/internal/infrastructure/migration"
	httpRouter "github.com/ledgerpos/ledgerpos/internal/interfaces/http"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/cli/bootstrap"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/version"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the local POS agent",
		Long:  `Start the agent the POS web app talks to: connectivity, plan access, upgrade prompts and the offline sync queue.`,
		RunE:  runAgent,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Apply pending database migrations on startup")

	return cmd
}

func runAgent(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("starting agent",
		"version", version.Version,
		"business_id", cfg.Business.ID,
		"auto_migrate", autoMigrate)

	bootstrap.QuietGin(cfg.Server.Mode)

	if autoMigrate {
		if err := migrateUp(cfg.Database.Driver, log); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to build agent: %w", err)
	}
	defer container.Shutdown()

	container.SetupRoutes()
	container.Start()

	// No write timeout: the event stream is long-lived.
	srv := &http.Server{
		Addr:        cfg.Server.GetAddr(),
		Handler:     container.Engine(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	return serve(srv, log)
}

func migrateUp(driver string, log logger.Interface) error {
	migrator, err := migration.NewMigrator(driver, log)
	if err != nil {
		return err
	}
	if err := migrator.Up(database.Get()); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// serve runs srv until SIGINT or SIGTERM, then drains it.
func serve(srv *http.Server, log logger.Interface) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Info("server exited gracefully")
	return nil
}
