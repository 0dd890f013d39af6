// Package config reads dungeonrun settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dungeonrun/internal/errors"
)

// Config holds everything a session and its front end need at startup.
type Config struct {
	Seed       int64  `env:"DUNGEON_SEED"`
	PlayerName string `env:"DUNGEON_PLAYER_NAME" envDefault:"Dangerous Dave"`
	Topology   string `env:"DUNGEON_TOPOLOGY"`
	Plain      bool   `env:"DUNGEON_PLAIN"`

	LogLevel string `env:"DUNGEON_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"DUNGEON_LOG_FILE"`

	Telemetry        bool   `env:"DUNGEON_TELEMETRY"`
	HoneycombAPIKey  string `env:"HONEYCOMB_DUNGEONRUN_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_DUNGEONRUN_DATASET" envDefault:"dungeonrun"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "load config")
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	vErr := errors.NewValidationError()
	if strings.TrimSpace(c.PlayerName) == "" {
		vErr.AddFieldError("player_name", "cannot be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		vErr.AddFieldError("log_level", err.Error())
	}
	if c.Telemetry && c.HoneycombAPIKey == "" {
		vErr.AddFieldError("honeycomb_api_key", "is required when telemetry is enabled")
	}
	return vErr.ToError()
}

// Level returns the configured slog level, defaulting to info.
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
