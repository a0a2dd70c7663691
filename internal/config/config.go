// Package config loads settings for the viewer and the reference backend.
//
// Precedence: defaults → YAML file → .env → environment variables.
// Command-line flags are applied on top by the binaries.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is read when POKEDEX_CONFIG is not set
	DefaultConfigPath = "pokedex.yaml"
	// DefaultAPIURL is the reference backend's default address
	DefaultAPIURL = "http://127.0.0.1:5000"
)

// Config is the root configuration structure.
// It is read-only after Load returns.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// APIConfig tells the viewer where the backend lives
type APIConfig struct {
	URL     string   `yaml:"url"`
	Timeout Duration `yaml:"timeout"`
}

// LogConfig contains logging settings
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// ServerConfig contains reference backend settings
type ServerConfig struct {
	Port            int      `yaml:"port"`
	DBPath          string   `yaml:"db_path"`
	MaxConns        int      `yaml:"max_conns"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// Duration is a wrapper around time.Duration that supports YAML string parsing
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load reads the config file named by POKEDEX_CONFIG (pokedex.yaml by default),
// then .env and the process environment. A missing file is not an error.
func Load() (*Config, error) {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	cfg := Default()
	if err := loadYAMLFile(cfg, getEnv("POKEDEX_CONFIG", DefaultConfigPath)); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific path, which must exist
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with all default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL:     DefaultAPIURL,
			Timeout: Duration(30 * time.Second),
		},
		Log: LogConfig{
			File:  "pokedex.log",
			Level: "info",
		},
		Server: ServerConfig{
			Port:            5000,
			DBPath:          "pokedex.db",
			MaxConns:        64,
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
	}
}

func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies non-empty environment variables.
// Unparseable numbers and durations are reported rather than ignored.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("POKEDEX_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("POKEDEX_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("POKEDEX_TIMEOUT: invalid duration %q: %w", v, err)
		}
		cfg.API.Timeout = Duration(d)
	}

	if v := os.Getenv("POKEDEX_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("POKEDEX_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("POKEDEX_DB"); v != "" {
		cfg.Server.DBPath = v
	}
	if v := os.Getenv("POKEDEX_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("POKEDEX_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("POKEDEX_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("POKEDEX_MAX_CONNS: %w", err)
		}
		cfg.Server.MaxConns = n
	}
	return nil
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api url %q must be an absolute http(s) URL", c.API.URL))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, errors.New("api timeout must not be negative"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level %q: %w", c.Log.Level, err))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	if c.Server.MaxConns < 0 {
		errs = append(errs, errors.New("server max_conns must not be negative"))
	}
	if strings.TrimSpace(c.Server.DBPath) == "" {
		errs = append(errs, errors.New("server db_path is required"))
	}

	return errors.Join(errs...)
}

// LogLevel returns the parsed log level, defaulting to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Addr returns the listen address of the reference backend
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
