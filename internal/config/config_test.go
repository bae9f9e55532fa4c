package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.DataDir == "" || !strings.HasSuffix(cfg.DataDir, ".ruamngan") {
		t.Fatalf("unexpected data dir %q", cfg.DataDir)
	}
	if !strings.HasSuffix(cfg.SessionDBPath(), "sessions.db") {
		t.Fatalf("unexpected session db path %q", cfg.SessionDBPath())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORTAL_DATA_DIR", "/tmp/portal-test")
	t.Setenv("PORTAL_TRACKER_BASE_URL", "http://localhost:9000")
	t.Setenv("PORTAL_RATE_BURST", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != "/tmp/portal-test" {
		t.Fatalf("data dir override ignored: %q", cfg.DataDir)
	}
	if cfg.TrackerBaseURL != "http://localhost:9000" {
		t.Fatalf("tracker url override ignored: %q", cfg.TrackerBaseURL)
	}
	if cfg.RateBurst != 5 {
		t.Fatalf("rate burst override ignored: %d", cfg.RateBurst)
	}
}

func TestResolveDefaultsRejectsBadRates(t *testing.T) {
	cfg := Config{DataDir: "/tmp/x", RateBurst: 0, RatePerSec: 10}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for zero burst")
	}
}
