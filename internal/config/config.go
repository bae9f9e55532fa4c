// Package config loads portal configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the portal service.
// Variables are read with the PORTAL_ prefix, e.g. PORTAL_LISTEN_ADDR.
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// DataDir is where profile-scoped state (session and quotation
	// databases) lives. Empty means ~/.ruamngan.
	DataDir string `envconfig:"DATA_DIR" default:""`

	// TrackerBaseURL is the base URL of the external CRM tracker API.
	TrackerBaseURL string `envconfig:"TRACKER_BASE_URL" default:"http://tracker.internal:3000"`

	// CookieSecret signs the session cookie. Required for serve.
	CookieSecret string `envconfig:"COOKIE_SECRET" default:""`

	// PostgresDSN switches the quotation store from the local sqlite
	// file to Postgres when set.
	PostgresDSN string `envconfig:"PG_DSN" default:""`

	RateBurst  int `envconfig:"RATE_BURST" default:"40"`
	RatePerSec int `envconfig:"RATE_PER_SEC" default:"20"`

	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

// Load parses configuration from the environment and resolves defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("portal", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveDefaults fills derived values that envconfig cannot express.
func (c *Config) ResolveDefaults() error {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("config: resolve data dir: %w", err)
		}
		c.DataDir = filepath.Join(home, ".ruamngan")
	}
	if c.RateBurst <= 0 || c.RatePerSec <= 0 {
		return fmt.Errorf("config: rate limits must be positive")
	}
	return nil
}

// SessionDBPath returns the sqlite file backing the session store.
func (c *Config) SessionDBPath() string {
	return filepath.Join(c.DataDir, "sessions.db")
}

// QuotationDBPath returns the sqlite file backing the quotation store.
func (c *Config) QuotationDBPath() string {
	return filepath.Join(c.DataDir, "quotations.db")
}

// PurchasingDBPath returns the sqlite file backing purchase requests.
func (c *Config) PurchasingDBPath() string {
	return filepath.Join(c.DataDir, "purchasing.db")
}
