package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/propedit/pkg/properrors"
	"github.com/macropower/propedit/pkg/properties"
)

// NewGetCmd returns the get command.
func NewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "get FILE KEY...",
		Short:        "Print properties from a file",
		Example:      "  propedit get app.properties user.name user.age",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w %q: %w", properrors.ErrReadFile, path, err)
			}

			var merr *multierror.Error

			for _, key := range args[1:] {
				value, ok := properties.Lookup(string(data), key)
				if !ok {
					merr = multierror.Append(merr, fmt.Errorf("%w: %q in %q", properrors.ErrKeyNotFound, key, path))

					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
			}

			return merr.ErrorOrNil() //nolint:wrapcheck // Each error names the key.
		},
	}
}
