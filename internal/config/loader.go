package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the file at path, expands ${VAR} references from the
// environment and validates the result. Values the file leaves out
// keep their defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(substituteEnvVars(raw), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when one is given and falls back to the
// defaults when the file cannot be used, logging why so a broken
// config does not silently run a default server. An empty path skips
// the file entirely.
func LoadOrDefault(path string) *Config {
	if path == "" {
		return Default()
	}

	cfg, err := Load(path)
	if err != nil {
		slog.Warn("falling back to default configuration", "path", path, "error", err)
		return Default()
	}

	return cfg
}
