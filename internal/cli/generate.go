package cli

import (
	"fmt"

	"github.com/brandonbloom/isbnfix/internal/fixture"
	"github.com/spf13/cobra"
)

func newGenerateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random digit sequences and their checksums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
	opts.bindGenerate(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	gen := fixture.NewGenerator(cfg.Seed)
	records, err := inRegion(ctx, "generate", func() ([]fixture.Record, error) {
		return gen.Generate(ctx, cfg.Count)
	})
	if err != nil {
		return err
	}

	paths := artifactPaths(cfg)
	if _, err := inRegion(ctx, "write", func() (struct{}, error) {
		return struct{}{}, fixture.WriteFiles(ctx, paths, records)
	}); err != nil {
		return err
	}

	p := newPalette(cmd.OutOrStdout(), cfg.Output.Color)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s records to %s and %s\n",
		p.value(len(records)), p.dim(paths.Input), p.dim(paths.Output))
	return nil
}
