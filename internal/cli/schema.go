package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/propedit/pkg/request"
)

// NewSchemaCmd returns the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "schema",
		Short:        "Print the JSON schema of YAML and JSON request documents",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := request.Schema()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(b))

			return nil
		},
	}
}
