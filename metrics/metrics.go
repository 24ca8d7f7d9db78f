package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the console's Prometheus metrics. A nil *Collector is valid
// and records nothing.
type Collector struct {
	registry        *prometheus.Registry
	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	pageOperations  *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		backendRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_backend_requests_total",
			Help: "Requests sent to the accounts service by operation and outcome",
		}, []string{"operation", "outcome"}),
		backendDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "accounts_backend_request_duration_seconds",
			Help:    "Round trip time of requests to the accounts service",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		pageOperations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "console_page_operations_total",
			Help: "Operations submitted through console pages by result",
		}, []string{"page", "operation", "result"}),
	}
}

// Outcome classifies a backend round trip: "network_error" when no response
// was received, otherwise the status class such as "2xx" or "4xx".
func Outcome(status int, err error) string {
	if err != nil {
		return "network_error"
	}
	return strconv.Itoa(status/100) + "xx"
}

func (c *Collector) ObserveBackendRequest(operation string, status int, err error, duration time.Duration) {
	if c == nil {
		return
	}
	c.backendRequests.WithLabelValues(operation, Outcome(status, err)).Inc()
	c.backendDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordPageOperation counts a page submission; result is "success",
// "error" or "rejected".
func (c *Collector) RecordPageOperation(page, operation, result string) {
	if c == nil {
		return
	}
	c.pageOperations.WithLabelValues(page, operation, result).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
