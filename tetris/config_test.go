package tetris_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/tetrad/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := tetris.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, tetris.RandomizerBag, cfg.Randomizer)
	assert.True(t, cfg.Hold)
	assert.True(t, cfg.Ghost)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Width = 3
	cfg.Preview = 9
	cfg.Randomizer = "loaded-dice"
	cfg.MinDropIntervalMS = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, tetris.ErrInvalidConfig)
	for _, want := range []string{"width 3", "preview 9", "loaded-dice", "min_drop_interval_ms"} {
		assert.ErrorContains(t, err, want)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetrad.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 12
seed = 99
ghost = false
randomizer = "uniform"
`)

	cfg, err := tetris.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.False(t, cfg.Ghost)
	assert.True(t, cfg.Hold)
	assert.Equal(t, tetris.RandomizerUniform, cfg.Randomizer)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "width = 10\nwidht = 12\n")

	_, err := tetris.LoadConfig(path)
	require.ErrorIs(t, err, tetris.ErrInvalidConfig)
	assert.ErrorContains(t, err, "widht")
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "height = 2\n")

	_, err := tetris.LoadConfig(path)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := tetris.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := tetris.LoadConfig(writeConfig(t, "width = \n"))
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}
