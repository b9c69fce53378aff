// Package config resolves run settings for the mazegen command from the
// environment, optionally seeded from a .env file.
//
// Variables:
//
//	MAZE_WIDTH      grid width in cells            (default 32)
//	MAZE_HEIGHT     grid height in cells           (default 16)
//	MAZE_ALGORITHM  generator label, e.g. "kruskal" (default "dfs")
//	MAZE_SEED       fixed random seed              (default: time-derived)
//	MAZE_INTERVAL   delay between animation frames (default 16ms)
//	MAZE_STEPS      generator steps per frame      (default 1)
//	MAZE_LOG_LEVEL  logrus level name              (default "info")
//
// Command-line flags take precedence; see cmd/mazegen.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmaze/generator"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvWidth     = "MAZE_WIDTH"
	EnvHeight    = "MAZE_HEIGHT"
	EnvAlgorithm = "MAZE_ALGORITHM"
	EnvSeed      = "MAZE_SEED"
	EnvInterval  = "MAZE_INTERVAL"
	EnvSteps     = "MAZE_STEPS"
	EnvLogLevel  = "MAZE_LOG_LEVEL"
)

// Config holds the resolved settings.
type Config struct {
	Width        int
	Height       int
	Algorithm    generator.Label
	Seed         int64 // meaningful only when HasSeed
	HasSeed      bool
	Interval     time.Duration
	StepsPerTick int
	LogLevel     logrus.Level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Width:        32,
		Height:       16,
		Algorithm:    generator.LabelDepthFirstSearch,
		Interval:     16 * time.Millisecond,
		StepsPerTick: 1,
		LogLevel:     logrus.InfoLevel,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then
// resolves Config from the environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv resolves Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Width, err = getEnvAsInt(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsInt(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.StepsPerTick, err = getEnvAsInt(EnvSteps, cfg.StepsPerTick); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvAlgorithm); ok {
		if cfg.Algorithm, err = generator.ParseLabel(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvAlgorithm, err)
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSeed, v)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	if v, ok := os.LookupEnv(EnvInterval); ok {
		d, perr := time.ParseDuration(v)
		if perr != nil || d < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvInterval, v)
		}
		cfg.Interval = d
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		lvl, perr := logrus.ParseLevel(v)
		if perr != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, EnvLogLevel, perr)
		}
		cfg.LogLevel = lvl
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges that parsing alone cannot.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidValue, c.Width, c.Height)
	}
	if c.StepsPerTick < 1 {
		return fmt.Errorf("%w: steps per tick %d", ErrInvalidValue, c.StepsPerTick)
	}
	return nil
}

// getEnvAsInt returns the integer value of key, or def when it is unset.
func getEnvAsInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return n, nil
}
