package catalog

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsRecorder exports service operation outcomes as Prometheus
// metrics: a duration histogram and an outcome counter, both labelled by
// operation and status.
type PrometheusMetricsRecorder struct {
	durations *prometheus.HistogramVec
	outcomes  *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder registers the catalogue service metrics with
// the given registerer. Passing nil registers with the default registry.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) *PrometheusMetricsRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PrometheusMetricsRecorder{
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "materialcore",
			Subsystem: "catalog",
			Name:      "operation_duration_seconds",
			Help:      "Duration of catalogue service operations.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"operation", "status"}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "materialcore",
			Subsystem: "catalog",
			Name:      "operations_total",
			Help:      "Count of catalogue service operations by outcome.",
		}, []string{"operation", "status"}),
	}
}

// Observe implements MetricsRecorder.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.durations.WithLabelValues(operation, status).Observe(duration.Seconds())
	r.outcomes.WithLabelValues(operation, status).Inc()
}
