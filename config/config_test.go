package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/generator"
)

// clearEnv unsets every MAZE_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvWidth, config.EnvHeight, config.EnvAlgorithm, config.EnvSeed,
		config.EnvInterval, config.EnvSteps, config.EnvLogLevel,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// TestFromEnv_Defaults returns Default when nothing is set.
func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.False(t, cfg.HasSeed)
}

// TestFromEnv_Values parses every variable.
func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvWidth, "40")
	t.Setenv(config.EnvHeight, "20")
	t.Setenv(config.EnvAlgorithm, "Recursive_Division")
	t.Setenv(config.EnvSeed, "0")
	t.Setenv(config.EnvInterval, "5ms")
	t.Setenv(config.EnvSteps, "3")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, generator.LabelRecursiveDivision, cfg.Algorithm)
	assert.True(t, cfg.HasSeed)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 5*time.Millisecond, cfg.Interval)
	assert.Equal(t, 3, cfg.StepsPerTick)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

// TestFromEnv_Invalid rejects malformed values.
func TestFromEnv_Invalid(t *testing.T) {
	cases := []struct{ key, val string }{
		{config.EnvWidth, "wide"},
		{config.EnvHeight, "0"},
		{config.EnvAlgorithm, "wilson"},
		{config.EnvSeed, "1.5"},
		{config.EnvInterval, "-1s"},
		{config.EnvSteps, "0"},
		{config.EnvLogLevel, "loud"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}

// TestLoad_DotEnv reads a file and tolerates a missing one.
func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "maze.env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_WIDTH=7\nMAZE_ALGORITHM=eller\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv(config.EnvWidth)
		_ = os.Unsetenv(config.EnvAlgorithm)
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Width)
	assert.Equal(t, generator.LabelEller, cfg.Algorithm)

	_, err = config.Load(filepath.Join(dir, "missing.env"))
	assert.NoError(t, err)
}
