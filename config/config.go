package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config is the process configuration read from the environment.
type Config struct {
	LogLevel      string `env:"ACTIONCORE_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"ACTIONCORE_LOG_FORMAT" envDefault:"text"`
	PrefabDir     string `env:"ACTIONCORE_PREFAB_DIR" envDefault:"prefabs"`
	Watch         bool   `env:"ACTIONCORE_WATCH" envDefault:"false"`
	TPS           int    `env:"ACTIONCORE_TPS" envDefault:"60"`
	HeadlessTicks int    `env:"ACTIONCORE_HEADLESS_TICKS" envDefault:"0"`
	Dummies       int    `env:"ACTIONCORE_DUMMIES" envDefault:"-1"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.TPS)
	}
	if c.HeadlessTicks < 0 {
		return fmt.Errorf("%w: headless ticks %d", ErrInvalidConfig, c.HeadlessTicks)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Headless reports whether the host should run without a window.
func (c Config) Headless() bool {
	return c.HeadlessTicks > 0
}

// DummyLimit returns how many training dummies to spawn; negative means all
// the arena defines.
func (c Config) DummyLimit(defined int) int {
	if c.Dummies < 0 || c.Dummies > defined {
		return defined
	}
	return c.Dummies
}

func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return lvl, nil
}

// NewLogger builds the process logger. The level was checked by Validate.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
