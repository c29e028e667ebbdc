package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LISTEN_ADDR", "DATABASE_PATH", "SESSION_SECRET",
		"GIN_MODE", "ADMIN_USER_NAME", "ADMIN_PASSWORD", "FETCH_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "linkshare.db" {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.FetchTimeout)
	}
	if cfg.AdminAuthEnabled() {
		t.Fatal("admin auth must stay off without credentials")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "2")
	t.Setenv("ADMIN_USER_NAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg := Load()

	if cfg.ListenAddr != ":9090" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.FetchTimeout != 2*time.Second {
		t.Fatalf("unexpected fetch timeout %v", cfg.FetchTimeout)
	}
	if !cfg.AdminAuthEnabled() {
		t.Fatal("expected admin auth enabled with credentials")
	}
}

func TestLoadIgnoresInvalidFetchTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("FETCH_TIMEOUT_SECONDS", "-3")

	if cfg := Load(); cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("invalid timeout must fall back to default, got %v", cfg.FetchTimeout)
	}
}
