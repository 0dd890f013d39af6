package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/samdwyer/dungeonrun/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PlayerName != "Dangerous Dave" {
		t.Errorf("PlayerName = %q, want Dangerous Dave", cfg.PlayerName)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Plain || cfg.Telemetry {
		t.Error("Plain and Telemetry should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "99")
	t.Setenv("DUNGEON_PLAYER_NAME", "Rogue")
	t.Setenv("DUNGEON_PLAIN", "true")
	t.Setenv("DUNGEON_TOPOLOGY", "/tmp/cave.json")
	t.Setenv("DUNGEON_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 99 || cfg.PlayerName != "Rogue" || !cfg.Plain || cfg.Topology != "/tmp/cave.json" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadBadSeed(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.IsInvalidArgument(err) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{PlayerName: "Dave", LogLevel: "warn"},
		},
		{
			name:    "blank name",
			cfg:     Config{PlayerName: "  ", LogLevel: "info"},
			wantErr: "player_name",
		},
		{
			name:    "unknown level",
			cfg:     Config{PlayerName: "Dave", LogLevel: "loud"},
			wantErr: "log_level",
		},
		{
			name:    "telemetry without key",
			cfg:     Config{PlayerName: "Dave", Telemetry: true},
			wantErr: "honeycomb_api_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %q", tt.wantErr)
			}
			if !errors.IsInvalidArgument(err) {
				t.Errorf("expected INVALID_ARGUMENT, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{" error ", slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLevel(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
