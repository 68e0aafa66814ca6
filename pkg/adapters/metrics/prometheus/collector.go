package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements service metrics using Prometheus. Each collector
// owns its registry, so independent instances never collide on metric
// registration.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal        *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	predictionsTotal     *prometheus.CounterVec
	predictionConfidence prometheus.Histogram
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mlgitops_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mlgitops_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		predictionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mlgitops_predictions_total",
				Help: "Total number of mock predictions by label",
			},
			[]string{"label"},
		),
		predictionConfidence: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mlgitops_prediction_confidence",
				Help:    "Confidence scores of mock predictions",
				Buckets: []float64{0.70, 0.75, 0.80, 0.85, 0.90, 0.95, 0.99},
			},
		),
	}
}

// RecordRequest records one handled HTTP request
func (c *Collector) RecordRequest(method, path string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPrediction records one generated mock prediction
func (c *Collector) RecordPrediction(label string, confidence float64) {
	c.predictionsTotal.WithLabelValues(label).Inc()
	c.predictionConfidence.Observe(confidence)
}

// Handler returns an HTTP handler exposing the collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
