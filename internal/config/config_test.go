package config

import (
	"os"
	"path/filepath"
	"testing"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GRIDVIEW_CONFIG", path)
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.ItemsPerPage != 10 {
		t.Errorf("expected default items_per_page 10, got %d", cfg.Grid.ItemsPerPage)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("expected default serve addr :8080, got %q", cfg.Serve.Addr)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	useTempConfig(t)

	cfg := DefaultConfig()
	cfg.Grid.ItemsPerPage = 25
	cfg.Database.URL = "postgres://localhost/test"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Grid.ItemsPerPage != 25 {
		t.Errorf("expected items_per_page 25, got %d", loaded.Grid.ItemsPerPage)
	}
	if loaded.Database.URL != "postgres://localhost/test" {
		t.Errorf("unexpected database url %q", loaded.Database.URL)
	}
}

func TestGetValue(t *testing.T) {
	cfg := DefaultConfig()

	val, ok := cfg.GetValue("grid.items_per_page")
	if !ok || val != "10" {
		t.Errorf("expected 10, got %q (ok=%v)", val, ok)
	}
	val, ok = cfg.GetValue("grid.no_color")
	if !ok || val != "false" {
		t.Errorf("expected false, got %q (ok=%v)", val, ok)
	}
	if _, ok := cfg.GetValue("grid.bogus"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestSetValue(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.SetValue("grid.items_per_page", "50"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if cfg.Grid.ItemsPerPage != 50 {
		t.Errorf("expected 50, got %d", cfg.Grid.ItemsPerPage)
	}

	if err := cfg.SetValue("grid.no_color", "true"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if !cfg.Grid.NoColor {
		t.Error("expected no_color true")
	}

	if err := cfg.SetValue("database.url", "postgres://x"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
}

func TestSetValueValidation(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.SetValue("grid.items_per_page", "0"); err == nil {
		t.Error("expected minimum violation")
	}
	if err := cfg.SetValue("grid.items_per_page", "9999"); err == nil {
		t.Error("expected maximum violation")
	}
	if err := cfg.SetValue("grid.items_per_page", "lots"); err == nil {
		t.Error("expected integer parse error")
	}
	if err := cfg.SetValue("grid.no_color", "maybe"); err == nil {
		t.Error("expected boolean parse error")
	}
	if err := cfg.SetValue("nope.nope", "x"); err == nil {
		t.Error("expected unknown key error")
	}
}

func TestDatabaseURLEnvOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URL = "postgres://from-config"

	t.Setenv("DATABASE_URL", "postgres://from-env")
	if got := cfg.DatabaseURL(); got != "postgres://from-env" {
		t.Errorf("expected env override, got %q", got)
	}

	os.Unsetenv("DATABASE_URL")
	if got := cfg.DatabaseURL(); got != "postgres://from-config" {
		t.Errorf("expected config value, got %q", got)
	}
}

func TestListKeys(t *testing.T) {
	keys := ListKeys()
	want := map[string]bool{
		"grid.items_per_page": false,
		"database.url":        false,
		"serve.addr":          false,
	}
	for _, k := range keys {
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("key %s missing from ListKeys", k)
		}
	}
}
