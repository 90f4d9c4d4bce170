package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/portfolio")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_SECRET", strings.Repeat("s", 32))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("AppPort = %d, want 8080", cfg.AppPort)
	}
	if cfg.RenderCacheTTL != 60*time.Second {
		t.Errorf("RenderCacheTTL = %v, want 60s", cfg.RenderCacheTTL)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if !cfg.RateLimitPublicEnabled {
		t.Error("Public rate limiting should default to enabled")
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("Load should fail without DATABASE_URL")
	}
}

func TestLoad_MissingSessionSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")

	// No fallback default exists; a missing secret is fatal in every env.
	if _, err := Load(); err == nil {
		t.Error("Load should fail without SESSION_SECRET")
	}
}

func TestLoad_WeakSecretInProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := Load()
	if !errors.Is(err, ErrWeakSessionSecret) {
		t.Errorf("Load should fail with ErrWeakSessionSecret, got: %v", err)
	}
}

func TestLoad_WeakSecretInDevelopment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_SECRET", "dev-secret")

	if _, err := Load(); err != nil {
		t.Errorf("Short secret should be tolerated outside production, got: %v", err)
	}
}

func TestGetCORSAllowedOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.com, https://staging.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) != 2 {
		t.Fatalf("Expected 2 origins, got %d: %v", len(origins), origins)
	}
	if origins[0] != "https://admin.example.com" || origins[1] != "https://staging.example.com" {
		t.Errorf("Origins not trimmed correctly: %v", origins)
	}
}

func TestIsProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Error("APP_ENV=production should report production mode")
	}
}
