package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != AppEnvDev {
		t.Fatalf("expected App.Env to default to development, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port: %q", cfg.App.Port)
	}
	if cfg.Catalog.Path != "data/menu.json" {
		t.Fatalf("unexpected default catalog path: %q", cfg.Catalog.Path)
	}
	if cfg.Pricing.ReceiptHeader != "The Boondocks Grill" {
		t.Fatalf("unexpected receipt header: %q", cfg.Pricing.ReceiptHeader)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvCatalogPath, "/etc/boondocks/menu.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("unexpected port: %q", cfg.App.Port)
	}
	if cfg.Catalog.Path != "/etc/boondocks/menu.json" {
		t.Fatalf("unexpected catalog path: %q", cfg.Catalog.Path)
	}
}
