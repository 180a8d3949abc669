package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AppName != "classhive" {
		t.Fatalf("expected default app name classhive, got %s", cfg.AppName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.IdentityTimeout != 10*time.Second {
		t.Fatalf("expected default identity timeout 10s, got %s", cfg.IdentityTimeout)
	}
	if cfg.IsProduction() {
		t.Fatal("expected non-production default environment")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("IDENTITY_BASE_URL", "https://id.example.com/api/auth/")
	t.Setenv("RATE_LIMIT_LOGIN_BURST", "42")
	t.Setenv("IDENTITY_TIMEOUT", "2s")

	cfg := Load()

	if !cfg.IsProduction() {
		t.Fatal("expected production environment")
	}
	if cfg.IdentityBaseURL != "https://id.example.com/api/auth" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.IdentityBaseURL)
	}
	if cfg.LoginBurst != 42 {
		t.Fatalf("expected login burst 42, got %d", cfg.LoginBurst)
	}
	if cfg.IdentityTimeout != 2*time.Second {
		t.Fatalf("expected identity timeout 2s, got %s", cfg.IdentityTimeout)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_LOGIN_RATE", "not-a-number")
	t.Setenv("DATABASE_MAX_OPEN_CONN", "lots")

	cfg := Load()

	if cfg.LoginRate != 1 {
		t.Fatalf("expected default login rate, got %f", cfg.LoginRate)
	}
	if cfg.DBMaxOpenConn != 25 {
		t.Fatalf("expected default max open conns, got %d", cfg.DBMaxOpenConn)
	}
}
