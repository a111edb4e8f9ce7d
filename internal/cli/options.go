package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brandonbloom/isbnfix/internal/config"
	"github.com/brandonbloom/isbnfix/internal/fixture"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds flag values for all subcommands; each command registers only
// the flags it uses. Values only take effect when the flag was given
// explicitly, so config and env still apply.
type options struct {
	configPath string
	verbose    bool
	color      string
	count      int
	seed       int64
	input      string
	output     string
}

// bind registers the flags every subcommand understands.
func (o *options) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "path to config file (default ./"+config.FileName+")")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&o.color, "color", "", "colorize output: auto, always, or never")
}

// bindGenerate registers the generation flags on cmd only.
func (o *options) bindGenerate(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&o.count, "count", "n", fixture.DefaultCount, "number of records to generate")
	flags.Int64Var(&o.seed, "seed", 0, "seed the random source for reproducible fixtures")
	o.bindPaths(cmd)
}

// bindPaths registers the artifact path flags on cmd only.
func (o *options) bindPaths(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.input, "input", "", "path of the digit (input) artifact")
	flags.StringVar(&o.output, "output", "", "path of the checksum (output) artifact")
}

// loadDotEnv reads .env next to the config file into the environment. It
// runs before the logger is built so ISBNFIX_LOG_LEVEL may come from .env.
func (o *options) loadDotEnv() error {
	path, err := o.resolveConfigPath()
	if err != nil {
		return err
	}
	if err := config.LoadDotEnv(filepath.Dir(path)); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func (o *options) resolveConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, config.FileName), nil
}

// load layers the config file and ISBNFIX_* variables (including those
// from .env), then explicitly given flags. Flags not registered on cmd are
// never Changed.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	path, err := o.resolveConfigPath()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = o.count
	}
	if flags.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if flags.Changed("input") {
		cfg.InputPath = o.input
	}
	if flags.Changed("output") {
		cfg.OutputPath = o.output
	}
	if flags.Changed("color") {
		cfg.Output.Color = o.color
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	zerolog.Ctx(cmd.Context()).Debug().
		Str("config", path).
		Int("count", cfg.Count).
		Str("input", cfg.InputPath).
		Str("output", cfg.OutputPath).
		Bool("seeded", cfg.Seed != nil).
		Msg("resolved settings")
	return cfg, nil
}

func artifactPaths(cfg config.Config) fixture.Paths {
	return fixture.Paths{Input: cfg.InputPath, Output: cfg.OutputPath}
}
