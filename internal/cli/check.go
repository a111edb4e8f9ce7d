package cli

import (
	"fmt"

	"github.com/brandonbloom/isbnfix/internal/checksum"
	"github.com/spf13/cobra"
)

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check DIGITS...",
		Short: "Compute the checksum of one or more 9-digit sequences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			p := newPalette(cmd.OutOrStdout(), cfg.Output.Color)
			for _, arg := range args {
				d, err := checksum.Parse(arg)
				if err != nil {
					return err
				}
				sum, err := checksum.Compute(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d, p.value(sum))
			}
			return nil
		},
	}
}
