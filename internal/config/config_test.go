package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

var envVars = []string{
	"POKEDEX_CONFIG",
	"POKEDEX_API_URL",
	"POKEDEX_TIMEOUT",
	"POKEDEX_LOG_FILE",
	"POKEDEX_LOG_LEVEL",
	"POKEDEX_DB",
	"POKEDEX_PORT",
	"POKEDEX_MAX_CONNS",
}

// clearEnv blanks every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokedex.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("POKEDEX_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.URL != DefaultAPIURL {
		t.Errorf("API.URL = %q, want %q", cfg.API.URL, DefaultAPIURL)
	}
	if cfg.API.Timeout.Std() != 30*time.Second {
		t.Errorf("API.Timeout = %v, want 30s", cfg.API.Timeout.Std())
	}
	if cfg.Log.File != "pokedex.log" || cfg.LogLevel() != log.InfoLevel {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Server.Port != 5000 || cfg.Addr() != ":5000" {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api:
  url: http://dex.local:8000
  timeout: 5s
log:
  level: debug
server:
  port: 9000
  max_conns: 8
  shutdown_timeout: 2s
`)
	t.Setenv("POKEDEX_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.URL != "http://dex.local:8000" || cfg.API.Timeout.Std() != 5*time.Second {
		t.Errorf("API = %+v", cfg.API)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
	if cfg.Server.Port != 9000 || cfg.Server.MaxConns != 8 || cfg.Server.ShutdownTimeout.Std() != 2*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	// Unset keys keep their defaults
	if cfg.Server.DBPath != "pokedex.db" || cfg.Log.File != "pokedex.log" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api:\n  url: http://from-yaml:1\nserver:\n  port: 9000\n")
	t.Setenv("POKEDEX_API_URL", "https://from-env.example")
	t.Setenv("POKEDEX_TIMEOUT", "0s")
	t.Setenv("POKEDEX_PORT", "7000")
	t.Setenv("POKEDEX_DB", "/tmp/dex.db")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.API.URL != "https://from-env.example" {
		t.Errorf("API.URL = %q", cfg.API.URL)
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("API.Timeout = %v, want 0", cfg.API.Timeout.Std())
	}
	if cfg.Server.Port != 7000 || cfg.Server.DBPath != "/tmp/dex.db" {
		t.Errorf("Server = %+v", cfg.Server)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		desc    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{"bad duration", "api:\n  timeout: soon\n", nil, "invalid duration"},
		{"bad yaml", "api: [", nil, "parsing config file"},
		{"relative url", "api:\n  url: localhost:5000\n", nil, "absolute http(s) URL"},
		{"bad level", "log:\n  level: loud\n", nil, "log level"},
		{"bad port", "server:\n  port: 70000\n", nil, "out of range"},
		{"env port", "", map[string]string{"POKEDEX_PORT": "five"}, "POKEDEX_PORT"},
		{"env timeout", "", map[string]string{"POKEDEX_TIMEOUT": "fast"}, "POKEDEX_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			t.Setenv("POKEDEX_CONFIG", writeConfig(t, tt.yaml))

			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	clearEnv(t)
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

func TestDurationMarshalYAML(t *testing.T) {
	v, err := Duration(90 * time.Second).MarshalYAML()
	if err != nil {
		t.Fatal(err)
	}
	if v != "1m30s" {
		t.Errorf("MarshalYAML() = %v, want 1m30s", v)
	}
}
