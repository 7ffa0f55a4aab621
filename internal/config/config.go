package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App      AppConfig      `toml:"app"`
	Backend  BackendConfig  `toml:"backend"`
	Chat     ChatConfig     `toml:"chat"`
	Explorer ExplorerConfig `toml:"explorer"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

// BackendConfig locates the recommendation backend. Resolved once at
// startup; the base URL is immutable for the process lifetime.
type BackendConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type ChatConfig struct {
	TopK         int `toml:"top_k"`
	TrendingTopK int `toml:"trending_top_k"`
}

type ExplorerConfig struct {
	DefaultMethod string `toml:"default_method"`
	PaletteSize   int    `toml:"palette_size"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)

	if cfg.Explorer.DefaultMethod != "pca" && cfg.Explorer.DefaultMethod != "tsne" {
		return nil, fmt.Errorf("explorer default_method must be pca or tsne, got %q", cfg.Explorer.DefaultMethod)
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "furniture-advisor",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8080,
			GinMode: "debug",
		},
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 30,
		},
		Chat: ChatConfig{
			TopK:         5,
			TrendingTopK: 10,
		},
		Explorer: ExplorerConfig{
			DefaultMethod: "pca",
			PaletteSize:   10,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Backend.BaseURL = getEnv("BACKEND_BASE_URL", cfg.Backend.BaseURL)
	cfg.Backend.TimeoutSeconds = getEnvAsInt("BACKEND_TIMEOUT_SECONDS", cfg.Backend.TimeoutSeconds)

	cfg.Chat.TopK = getEnvAsInt("CHAT_TOP_K", cfg.Chat.TopK)
	cfg.Chat.TrendingTopK = getEnvAsInt("CHAT_TRENDING_TOP_K", cfg.Chat.TrendingTopK)

	cfg.Explorer.DefaultMethod = getEnv("EXPLORER_DEFAULT_METHOD", cfg.Explorer.DefaultMethod)
	cfg.Explorer.PaletteSize = getEnvAsInt("EXPLORER_PALETTE_SIZE", cfg.Explorer.PaletteSize)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
