// Package plans prints the plan catalog the agent gates features with.
package plans

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ledgerpos/ledgerpos/internal/domain/plan"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Print the plan catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(plan.Catalog())
			if err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
