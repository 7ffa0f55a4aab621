package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	appsvc "github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/app"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/config"
	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/platform/metrics"
)

type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Registry  *prometheus.Registry
	Backend   *backend.Client
	Chat      *appsvc.ChatService
	Explorer  *appsvc.ExplorerService
	Dashboard *appsvc.MetricsService

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger, err := newLogger(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("build logger failed: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	gatewayMetrics := metrics.NewGateway(registry)

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.BackendTimeout(),
	}, gatewayMetrics)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Registry:  registry,
		Backend:   client,
		Chat:      appsvc.NewChatService(client, logger, cfg.Chat.TopK, cfg.Chat.TrendingTopK),
		Explorer:  appsvc.NewExplorerService(client, logger, cfg.Explorer.DefaultMethod, cfg.Explorer.PaletteSize),
		Dashboard: appsvc.NewMetricsService(client),
		StartedAt: time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
