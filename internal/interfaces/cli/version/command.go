package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerpos/ledgerpos/internal/shared/version"
)

func NewCommand() *cobra.Command {
	var latest string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ledgerpos %s (commit %s, built %s)\n", version.Version, version.Commit, version.BuildDate)
			if latest != "" && version.HasNewerVersion(version.Version, latest) {
				fmt.Fprintf(out, "update available: %s\n", version.Normalize(latest))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&latest, "latest", "", "Compare against this released version")

	return cmd
}
