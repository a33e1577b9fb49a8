// Package config loads settings for the demo server from an optional YAML
// file, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FrameworkHTTP = "http"
	FrameworkGin  = "gin"
	FrameworkEcho = "echo"
)

var ErrInvalidConfig = errors.New("invalid config")

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Addr      string    `yaml:"addr"`
	Framework string    `yaml:"framework"`
	Log       LogConfig `yaml:"log"`
}

func Default() Config {
	return Config{
		Addr:      ":8080",
		Framework: FrameworkHTTP,
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path (if non-empty) over the defaults, then applies
// HTTPERR_* environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	cfg.Addr = envOrDefault("HTTPERR_ADDR", cfg.Addr)
	cfg.Framework = envOrDefault("HTTPERR_FRAMEWORK", cfg.Framework)
	cfg.Log.Level = envOrDefault("HTTPERR_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envOrDefault("HTTPERR_LOG_FORMAT", cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Framework {
	case FrameworkHTTP, FrameworkGin, FrameworkEcho:
	default:
		return fmt.Errorf("%w: unknown framework %q", ErrInvalidConfig, c.Framework)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is required", ErrInvalidConfig)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
