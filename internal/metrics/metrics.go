// Package metrics collects and exposes Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records API metrics into a Prometheus registry.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	requestDuration prometheus.Histogram
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	rateLimited     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with the given
// registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskflow_http_requests_total",
			Help: "Total HTTP requests served, by method, route and status code.",
		}, []string{"method", "path", "status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskflow_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskflow_cache_hits_total",
			Help: "Total responses served from the response cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskflow_cache_misses_total",
			Help: "Total cacheable requests that missed the response cache.",
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskflow_rate_limit_rejections_total",
			Help: "Total requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.requestDuration,
		c.cacheHits,
		c.cacheMisses,
		c.rateLimited,
	)

	return c
}

// RecordRequest records one completed HTTP request. The path should be the
// matched route pattern, not the raw URL, to keep label cardinality bounded.
func (c *Collector) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// RecordCacheHit records a response served from the cache.
func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

// RecordCacheMiss records a cacheable request that had to reach a handler.
func (c *Collector) RecordCacheMiss() {
	c.cacheMisses.Inc()
}

// RecordRateLimitRejection records a request refused with 429.
func (c *Collector) RecordRateLimitRejection() {
	c.rateLimited.Inc()
}

// Handler returns the HTTP handler that serves metrics in the Prometheus
// exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
