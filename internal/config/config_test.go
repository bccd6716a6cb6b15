package config_test

import (
	"strings"
	"testing"

	"clockctl/internal/config"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("CLOCKCTL_HOME", t.TempDir())

	original := config.Config{
		APIToken:  "secret-token",
		BaseURL:   "https://clockify.example.com",
		Workspace: "ws-1",
		User:      "user-1",
		Billable:  true,
	}
	if err := original.Save(); err != nil {
		t.Fatalf("can't save config: %s", err)
	}

	loaded, err := config.Load()
	if err != nil {
		t.Fatalf("can't load config: %s", err)
	}
	if loaded != original {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, original)
	}
}

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	t.Setenv("CLOCKCTL_HOME", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error, got: %s", err)
	}
	if cfg != (config.Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestGetSet(t *testing.T) {
	var cfg config.Config

	for key, value := range map[string]string{
		"api-token": "tok",
		"base-url":  "https://example.com",
		"workspace": "ws",
		"user":      "u",
		"billable":  "true",
	} {
		if err := cfg.Set(key, value); err != nil {
			t.Fatalf("Set(%q, %q) failed: %s", key, value, err)
		}
		got, err := cfg.Get(key)
		if err != nil {
			t.Fatalf("Get(%q) failed: %s", key, err)
		}
		if got != value {
			t.Errorf("Get(%q) = %q, expected %q", key, got, value)
		}
	}

	if err := cfg.Set("billable", "maybe"); err == nil {
		t.Error("expected error for non-boolean billable")
	}
	if err := cfg.Set("nope", "x"); err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("expected unknown-key error, got %v", err)
	}
	if _, err := cfg.Get("nope"); err == nil {
		t.Error("expected unknown-key error on Get")
	}
}
