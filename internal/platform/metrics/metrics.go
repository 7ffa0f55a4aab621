package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Gateway instruments outbound backend calls. It satisfies the backend
// client's Observer interface.
type Gateway struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewGateway(reg prometheus.Registerer) *Gateway {
	g := &Gateway{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "furniture_advisor",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "Outbound backend calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "furniture_advisor",
			Subsystem: "backend",
			Name:      "call_duration_seconds",
			Help:      "Outbound backend call latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(g.calls, g.duration)
	return g
}

func (g *Gateway) ObserveCall(operation string, status int, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	g.calls.WithLabelValues(operation, outcome).Inc()
	g.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
