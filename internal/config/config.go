// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Store backends selectable with NUCAMPSITE_STORE.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr    string `env:"NUCAMPSITE_LISTEN_ADDR"    envDefault:"127.0.0.1:8080"`
	DBPath        string `env:"NUCAMPSITE_DB_PATH"        envDefault:"nucampsite.db"`
	Store         string `env:"NUCAMPSITE_STORE"          envDefault:"sqlite"`
	BaseURL       string `env:"NUCAMPSITE_BASE_URL"       envDefault:"/static/"`
	Seed          bool   `env:"NUCAMPSITE_SEED"           envDefault:"true"`
	Animations    bool   `env:"NUCAMPSITE_ANIMATIONS"     envDefault:"true"`
	LogLevel      string `env:"NUCAMPSITE_LOG_LEVEL"      envDefault:"info"`
	SecureCookies bool   `env:"NUCAMPSITE_SECURE_COOKIES" envDefault:"false"`
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional; see the struct tags for defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if cfg.Store != StoreSQLite && cfg.Store != StoreMemory {
		return nil, fmt.Errorf("NUCAMPSITE_STORE must be %q or %q, got %q", StoreSQLite, StoreMemory, cfg.Store)
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}

	if cfg.Store == StoreSQLite && strings.TrimSpace(cfg.DBPath) == "" {
		return nil, fmt.Errorf("NUCAMPSITE_DB_PATH must not be empty when NUCAMPSITE_STORE is %q", StoreSQLite)
	}

	return &cfg, nil
}

// SlogLevel converts LogLevel into a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("NUCAMPSITE_LOG_LEVEL has invalid level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// JoinURL joins a base URL and a relative reference with exactly one slash
// between them. An empty base returns ref unchanged.
func JoinURL(base, ref string) string {
	if base == "" {
		return ref
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(ref, "/")
}
