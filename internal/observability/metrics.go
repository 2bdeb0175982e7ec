// Package observability holds the process wide Prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forum_http_requests_in_flight",
		Help: "Number of HTTP requests currently being processed",
	})

	// LikeToggles counts comment like transitions by action (ADD or REMOVE).
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_comment_like_toggles_total",
		Help: "Total number of comment like toggles",
	}, []string{"action"})

	// ThreadLookups counts how thread reads were answered: cache_hit, database,
	// bloom_reject (negative confirmed by the database) or bloom_miss (stored
	// thread the filter did not know).
	ThreadLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_thread_lookups_total",
		Help: "Thread lookups by the layer that answered them",
	}, []string{"source"})

	// RedisErrors counts Redis failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
