package cli

import (
	"fmt"

	"github.com/brandonbloom/isbnfix/internal/fixture"
	"github.com/spf13/cobra"
)

func newVerifyCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every stored checksum matches its digits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			paths := artifactPaths(cfg)
			records, err := fixture.ReadFiles(paths)
			if err != nil {
				return fmt.Errorf("read fixtures: %w", err)
			}

			p := newPalette(cmd.OutOrStdout(), cfg.Output.Color)
			if err := fixture.Verify(records); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", p.bad("FAIL"), err)
				return fmt.Errorf("verify %s: %w", paths.Output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s records verified\n", p.good("OK"), p.value(len(records)))
			return nil
		},
	}
	opts.bindPaths(cmd)
	return cmd
}
