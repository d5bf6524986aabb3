// Package config holds the Workdeck server configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for the Workdeck server.
type Config struct {
	Addr         string        `yaml:"addr"`          // Listen address (default ":8080")
	LogLevel     string        `yaml:"log_level"`     // Log level: debug, info, warn, error
	LogFormat    string        `yaml:"log_format"`    // Log format: text, json
	DBPath       string        `yaml:"db_path"`       // SQLite database path (default ~/.workdeck/workdeck.db, ":memory:" for testing)
	WorkspaceDir string        `yaml:"workspace_dir"` // Directory of saved workflow files (default ~/.workdeck/workflows)
	GalleryURL   string        `yaml:"gallery_url"`   // Upstream gallery feed URL (empty serves only the cache)
	GalleryTTL   time.Duration `yaml:"gallery_ttl"`   // Cache lifetime of the gallery feed
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		Addr:       ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
		GalleryTTL: 15 * time.Minute,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from WORKDECK_* environment variables.
func (c *Config) ApplyEnv() {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString(&c.Addr, "WORKDECK_ADDR")
	setString(&c.LogLevel, "WORKDECK_LOG_LEVEL")
	setString(&c.LogFormat, "WORKDECK_LOG_FORMAT")
	setString(&c.DBPath, "WORKDECK_DB")
	setString(&c.WorkspaceDir, "WORKDECK_WORKSPACE")
	setString(&c.GalleryURL, "WORKDECK_GALLERY_URL")
	if v := os.Getenv("WORKDECK_GALLERY_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.GalleryTTL = d
		}
	}
}
