package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/brandonbloom/isbnfix/internal/logging"
	"github.com/brandonbloom/isbnfix/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "isbnfix",
		Short:         "Generate and check ISBN checksum exercise fixtures",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.loadDotEnv(); err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			logger := logging.New(stderr, logging.Level(opts.verbose), writerIsTerminal(stderr))
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	opts.bind(cmd)
	opts.bindGenerate(cmd)

	cmd.AddCommand(
		newGenerateCommand(opts),
		newVerifyCommand(opts),
		newShowCommand(opts),
		newCheckCommand(opts),
		newInitCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
