package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the project-local configuration file.
const FileName = ".isbnfix.toml"

// MaxCount caps a single generation run.
const MaxCount = 1_000_000

// Config captures the user editable settings stored in .isbnfix.toml.
type Config struct {
	Count      int         `toml:"count"`
	InputPath  string      `toml:"input_path"`
	OutputPath string      `toml:"output_path"`
	Seed       *int64      `toml:"seed,omitempty"`
	Output     OutputBlock `toml:"output"`
}

// OutputBlock governs terminal presentation.
type OutputBlock struct {
	Color string `toml:"color"`
}

func (o *OutputBlock) applyDefaults() {
	o.Color = strings.ToLower(o.Color)
}

// Validate ensures the color mode is recognized.
func (o OutputBlock) Validate() error {
	err := validation.Validate(o.Color, validation.Required, validation.In("auto", "always", "never"))
	if err != nil {
		return fmt.Errorf("%w (got %q)", ErrInvalidColor, o.Color)
	}
	return nil
}

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidColor indicates an unknown output.color mode.
	ErrInvalidColor = errors.New("output.color must be auto, always, or never")
	// ErrSameArtifact indicates input_path and output_path name the same file.
	ErrSameArtifact = errors.New("output_path must differ from input_path")
)

// Default returns the baseline configuration: 50 records written to
// ./input and ./output.
func Default() Config {
	return Config{
		Count:      50,
		InputPath:  "input",
		OutputPath: "output",
		Output:     OutputBlock{Color: "auto"},
	}
}

func (c *Config) applyDefaults() {
	c.Output.applyDefaults()
}

// Validate ensures the configuration can drive a generation run.
func (c Config) Validate() error {
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if sameFile(c.InputPath, c.OutputPath) {
		return fmt.Errorf("%w: %w (both are %s)", ErrInvalidConfig, ErrSameArtifact, c.OutputPath)
	}
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Count, validation.Required.Error("must be at least 1"), validation.Min(1), validation.Max(MaxCount)),
		validation.Field(&c.InputPath, validation.Required),
		validation.Field(&c.OutputPath, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// sameFile compares absolute, cleaned forms so ./fx and fx collide.
func sameFile(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return absPath(a) == absPath(b)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// Load reads configuration from disk. Missing files return a default config.
// Relative artifact paths are resolved against the config file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	// Keys absent from the file keep their defaults; explicit values,
	// including zero, are validated as written.
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	dir := filepath.Dir(path)
	cfg.InputPath = resolve(dir, cfg.InputPath)
	cfg.OutputPath = resolve(dir, cfg.OutputPath)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to disk, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Environment variables that override file settings.
const (
	EnvCount  = "ISBNFIX_COUNT"
	EnvSeed   = "ISBNFIX_SEED"
	EnvInput  = "ISBNFIX_INPUT"
	EnvOutput = "ISBNFIX_OUTPUT"
)

// LoadDotEnv loads dir/.env into the process environment when present.
// Variables already set take precedence.
func LoadDotEnv(dir string) error {
	candidate := filepath.Join(dir, ".env")
	fi, err := os.Stat(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if fi.IsDir() {
		return nil
	}
	return godotenv.Load(candidate)
}

// ApplyEnv overlays ISBNFIX_* variables from lookup onto cfg.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if s, ok := lookup(EnvCount); ok && s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvCount, err)
		}
		cfg.Count = n
	}
	if s, ok := lookup(EnvSeed); ok && s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = &seed
	}
	if s, ok := lookup(EnvInput); ok && s != "" {
		cfg.InputPath = s
	}
	if s, ok := lookup(EnvOutput); ok && s != "" {
		cfg.OutputPath = s
	}
	return nil
}
