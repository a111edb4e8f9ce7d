package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Count)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Nil(t, cfg.Seed)
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default()
	cfg.Count = 12
	cfg.Seed = lo.ToPtr(int64(99))
	cfg.Output.Color = "never"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Count)
	require.NotNil(t, got.Seed)
	assert.Equal(t, int64(99), *got.Seed)
	assert.Equal(t, "never", got.Output.Color)
	assert.Equal(t, filepath.Join(dir, "input"), got.InputPath)
	assert.Equal(t, filepath.Join(dir, "output"), got.OutputPath)
}

func TestLoadNormalizesColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[output]\ncolor = \"ALWAYS\"\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Output.Color)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negativeCount": "count = -3\n",
		"hugeCount":     "count = 2000000\n",
		"zeroCount":     "count = 0\n",
		"samePaths":     "input_path = \"fx\"\noutput_path = \"fx\"\n",
		"samePathsDot":  "input_path = \"./fx\"\noutput_path = \"fx\"\n",
		"emptyInput":    "input_path = \"\"\n",
		"badColor":      "[output]\ncolor = \"rainbow\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("seed = 4\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Count)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, filepath.Join(dir, "input"), cfg.InputPath)
}

func TestValidateComparesCleanedPaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	for _, pair := range [][2]string{
		{"./fx", "fx"},
		{"fx", "sub/../fx"},
		{"fx", filepath.Join(wd, "fx")},
	} {
		cfg := Default()
		cfg.InputPath, cfg.OutputPath = pair[0], pair[1]
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig, "%v", pair)
		assert.ErrorIs(t, err, ErrSameArtifact, "%v", pair)
	}

	cfg := Default()
	cfg.InputPath, cfg.OutputPath = "fx/in", "fx/out"
	assert.NoError(t, cfg.Validate())
}

func TestValidateColorIsMatchable(t *testing.T) {
	cfg := Default()
	cfg.Output.Color = "rainbow"
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrInvalidColor)

	cfg.Output.Color = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidColor)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("count = [\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvCount:  "7",
		EnvSeed:   "-5",
		EnvInput:  "/tmp/in",
		EnvOutput: "/tmp/out",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg, lookup))
	assert.Equal(t, 7, cfg.Count)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(-5), *cfg.Seed)
	assert.Equal(t, "/tmp/in", cfg.InputPath)
	assert.Equal(t, "/tmp/out", cfg.OutputPath)

	env[EnvCount] = "many"
	assert.Error(t, ApplyEnv(&cfg, lookup))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(dir))

	const key = "ISBNFIX_TEST_DOTENV"
	t.Setenv(key, "")
	os.Unsetenv(key)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=31\n"), 0o644))
	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "31", os.Getenv(key))
}
