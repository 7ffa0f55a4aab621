package app

import (
	"context"
	"errors"
	"testing"

	"github.com/aadityasalaria/AI-Product-Analytics-WebApp/internal/backend"
)

type fakeMetricsGateway struct {
	resp *backend.MetricsResponse
	err  error
}

func (f *fakeMetricsGateway) Metrics(context.Context) (*backend.MetricsResponse, error) {
	return f.resp, f.err
}

func TestDashboardDerivesAccuracyPercent(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     float64
	}{
		{"round value", 0.85, 85.0},
		{"rounds to one decimal", 0.8567, 85.7},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMetricsService(&fakeMetricsGateway{resp: &backend.MetricsResponse{
				TotalProducts: 500,
				Categories:    map[string]int{"sofa": 120},
				RecommendationInsights: backend.RecommendationInsights{
					RecommendationAccuracy: tt.accuracy,
				},
			}})

			metrics, err := svc.Dashboard(context.Background())
			if err != nil {
				t.Fatalf("Dashboard() error: %v", err)
			}
			if metrics.AccuracyPercent != tt.want {
				t.Errorf("AccuracyPercent = %v, want %v", metrics.AccuracyPercent, tt.want)
			}
			if metrics.TotalProducts != 500 {
				t.Errorf("TotalProducts = %d", metrics.TotalProducts)
			}
		})
	}
}

func TestDashboardPropagatesFetchError(t *testing.T) {
	upstream := &backend.RequestError{Status: 502, Message: "bad gateway"}
	svc := NewMetricsService(&fakeMetricsGateway{err: upstream})

	_, err := svc.Dashboard(context.Background())
	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want wrapped *RequestError", err)
	}
}
