// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of the trainbox binary. Every field can be set
// through a TRAINBOX_* environment variable.
type Config struct {
	Title  string `env:"TRAINBOX_TITLE" envDefault:"trainbox"`
	Width  int    `env:"TRAINBOX_WIDTH" envDefault:"960"`
	Height int    `env:"TRAINBOX_HEIGHT" envDefault:"320"`

	// Level is either the name of an embedded level or a path to a YAML file.
	Level string `env:"TRAINBOX_LEVEL" envDefault:"02-first-flip"`
	// Script is an optional path to a JSON scene script.
	Script string `env:"TRAINBOX_SCRIPT"`
	// DBPath enables snapshot storage when set.
	DBPath string `env:"TRAINBOX_DB"`

	ScreenshotDir string `env:"TRAINBOX_SCREENSHOT_DIR" envDefault:"screenshots"`
	ShowFPS       bool   `env:"TRAINBOX_SHOW_FPS" envDefault:"false"`
	Debug         bool   `env:"TRAINBOX_DEBUG" envDefault:"false"`
	LogLevel      string `env:"TRAINBOX_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if strings.TrimSpace(c.Level) == "" {
		return fmt.Errorf("level is required")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level. Debug forces slog.LevelDebug.
func (c Config) SlogLevel() (slog.Level, error) {
	if c.Debug {
		return slog.LevelDebug, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
