package app

import (
	"context"
	"fmt"
	"math"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
)

// MetricsGateway is the slice of the backend client the dashboard needs.
type MetricsGateway interface {
	Metrics(ctx context.Context) (*backend.MetricsResponse, error)
}

type DashboardMetrics struct {
	TotalProducts          int                                `json:"total_products"`
	Categories             map[string]int                     `json:"categories"`
	CategoryInsights       map[string]backend.CategoryInsight `json:"category_insights"`
	PriceStatistics        backend.PriceStatistics            `json:"price_statistics"`
	PriceRanges            backend.PriceRanges                `json:"price_ranges"`
	RecommendationInsights backend.RecommendationInsights     `json:"recommendation_insights"`
	AccuracyPercent        float64                            `json:"accuracy_percent"`
}

// MetricsService is a stateless pull: each Dashboard call fetches fresh and
// nothing persists across retries beyond what the caller keeps.
type MetricsService struct {
	gateway MetricsGateway
}

func NewMetricsService(gateway MetricsGateway) *MetricsService {
	return &MetricsService{gateway: gateway}
}

func (s *MetricsService) Dashboard(ctx context.Context) (*DashboardMetrics, error) {
	resp, err := s.gateway.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch metrics: %w", err)
	}

	accuracy := resp.RecommendationInsights.RecommendationAccuracy * 100
	accuracy = math.Round(accuracy*10) / 10

	return &DashboardMetrics{
		TotalProducts:          resp.TotalProducts,
		Categories:             resp.Categories,
		CategoryInsights:       resp.CategoryInsights,
		PriceStatistics:        resp.PriceStatistics,
		PriceRanges:            resp.PriceRanges,
		RecommendationInsights: resp.RecommendationInsights,
		AccuracyPercent:        accuracy,
	}, nil
}
