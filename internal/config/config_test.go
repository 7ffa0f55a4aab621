package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.App.Name != "furniture-advisor" || cfg.App.Port != 8080 {
		t.Errorf("app defaults = %+v", cfg.App)
	}
	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("backend base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Chat.TopK != 5 || cfg.Chat.TrendingTopK != 10 {
		t.Errorf("chat defaults = %+v", cfg.Chat)
	}
	if cfg.Explorer.DefaultMethod != "pca" {
		t.Errorf("explorer default_method = %q", cfg.Explorer.DefaultMethod)
	}
	if cfg.HTTPAddr() != "0.0.0.0:8080" {
		t.Errorf("HTTPAddr() = %q", cfg.HTTPAddr())
	}
	if cfg.BackendTimeout() != 30*time.Second {
		t.Errorf("BackendTimeout() = %v", cfg.BackendTimeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[app]
port = 9090

[backend]
base_url = "http://backend:8000"
timeout_seconds = 10

[explorer]
default_method = "tsne"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.App.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.App.Port)
	}
	if cfg.Backend.BaseURL != "http://backend:8000" {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Explorer.DefaultMethod != "tsne" {
		t.Errorf("default_method = %q", cfg.Explorer.DefaultMethod)
	}
	if cfg.App.Name != "furniture-advisor" {
		t.Errorf("unset fields lost their defaults: name = %q", cfg.App.Name)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[backend]\nbase_url = \"http://file:8000\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("BACKEND_BASE_URL", "http://env:8000")
	t.Setenv("CHAT_TOP_K", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Backend.BaseURL != "http://env:8000" {
		t.Errorf("base_url = %q, want env value", cfg.Backend.BaseURL)
	}
	if cfg.Chat.TopK != 7 {
		t.Errorf("top_k = %d, want 7", cfg.Chat.TopK)
	}
}

func TestLoadRejectsUnknownMethod(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("EXPLORER_DEFAULT_METHOD", "umap")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted unknown default_method")
	}
}

func TestInvalidEnvIntFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("CHAT_TOP_K", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Chat.TopK != 5 {
		t.Errorf("top_k = %d, want default 5", cfg.Chat.TopK)
	}
}
