package cli

import (
	"fmt"

	"github.com/brandonbloom/isbnfix/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the isbnfix version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			line := fmt.Sprintf("%s version %s", root.DisplayName(), root.Version)
			if rev := version.Revision(); rev != "" {
				line += " (" + rev + ")"
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}
