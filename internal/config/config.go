// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Shell   ShellConfig
	Logging LogConfig
}

// ShellConfig holds interpreter configuration.
type ShellConfig struct {
	// StartDir overrides the starting working directory; empty means the
	// user's home directory.
	StartDir string `envconfig:"FM_START_DIR" default:""`

	// Compression selects the codec used by compress/decompress.
	Compression string `envconfig:"FM_COMPRESSION" default:"gzip"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FM_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"FM_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Compression: "gzip",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
