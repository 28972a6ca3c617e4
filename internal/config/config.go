// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents configuration that can be loaded from a JSON file
// and/or the environment. All fields are optional; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	Port        int    `json:"port,omitempty"`          // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	LexiconPath string `json:"lexicon,omitempty"`       // Optional lexicon override file
	MaxUploadMB int    `json:"max_upload_mb,omitempty"` // Upload size limit in MiB
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables
// leave zero values for MergeWithDefaults to fill.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LexiconPath: os.Getenv("LEXICON_PATH"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if mb, err := strconv.Atoi(os.Getenv("MAX_UPLOAD_MB")); err == nil {
		cfg.MaxUploadMB = mb
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}

	return result
}
