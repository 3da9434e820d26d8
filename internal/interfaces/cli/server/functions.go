package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerpos/ledgerpos/internal/infrastructure/database"
	httpRouter "github.com/ledgerpos/ledgerpos/internal/interfaces/http"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/cli/bootstrap"
	"github.com/ledgerpos/ledgerpos/internal/shared/version"
)

var functionsEnv string

func NewFunctionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "Start the hosted functions",
		Long:  `Serve /functions/v1: username lookup, the admin function and the subscription endpoint.`,
		RunE:  runFunctions,
	}

	cmd.Flags().StringVarP(&functionsEnv, "env", "e", "production", "Environment (development, test, production)")

	return cmd
}

func runFunctions(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(bootstrap.ResolveEnv(functionsEnv))
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Functions.ServiceRoleKey == "" {
		log.Warn("functions.service_role_key is empty; username lookup will answer 500")
	}

	bootstrap.QuietGin(cfg.Server.Mode)

	container, err := httpRouter.NewFunctionsContainer(database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build functions host: %w", err)
	}
	defer container.Shutdown()

	container.SetupRoutes()

	log.Infow("starting functions host", "version", version.Version)

	srv := &http.Server{
		Addr:         cfg.Functions.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return serve(srv, log)
}
