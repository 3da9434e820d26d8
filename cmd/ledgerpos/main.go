package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerpos/ledgerpos/internal/interfaces/cli/migrate"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/cli/plans"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/cli/server"
	"github.com/ledgerpos/ledgerpos/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerpos",
		Short: "LedgerPOS - point of sale agent and hosted functions",
		Long:  `LedgerPOS runs the local POS agent (connectivity, plan access, upgrade prompts, offline sync) and the hosted functions it relies on.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		server.NewFunctionsCommand(),
		migrate.NewCommand(),
		plans.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
