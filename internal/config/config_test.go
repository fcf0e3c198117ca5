package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TREEVIZ_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Capacity != 50 {
		t.Errorf("cache.capacity = %d, want 50", cfg.Cache.Capacity)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("ui.theme = %q, want mocha", cfg.UI.Theme)
	}
	if cfg.UI.StartExample != "" {
		t.Errorf("ui.start_example = %q, want empty", cfg.UI.StartExample)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[cache]\ncapacity = 12\n\n[ui]\nstart_example = \"org-chart\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TREEVIZ_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Capacity != 12 {
		t.Errorf("cache.capacity = %d, want 12", cfg.Cache.Capacity)
	}
	if cfg.UI.StartExample != "org-chart" {
		t.Errorf("ui.start_example = %q, want org-chart", cfg.UI.StartExample)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("TREEVIZ_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("TREEVIZ_CACHE_CAPACITY", "7")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Capacity != 7 {
		t.Errorf("cache.capacity = %d, want env override 7", cfg.Cache.Capacity)
	}
}
