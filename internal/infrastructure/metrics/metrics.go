package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by method, route template and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method and route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quill_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// AuthFailures counts requests rejected by the authorization gate.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_auth_failures_total",
		Help: "Total number of rejected credentials by reason",
	}, []string{"reason"})

	// PostReactions counts like/dislike toggles by outcome.
	PostReactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_post_reactions_total",
		Help: "Total number of post reactions by outcome",
	}, []string{"outcome"})

	// CacheLookups counts list cache lookups by cache and result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_cache_lookups_total",
		Help: "Total number of list cache lookups",
	}, []string{"cache", "result"})
)

func ObserveRequest(method, route, status string, seconds float64) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func IncAuthFailure(reason string) {
	AuthFailures.WithLabelValues(reason).Inc()
}

func IncReaction(outcome string) {
	PostReactions.WithLabelValues(outcome).Inc()
}

func IncCacheLookup(cache, result string) {
	CacheLookups.WithLabelValues(cache, result).Inc()
}

// RedisErrors counts failed redis commands by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "quill_redis_errors_total",
	Help: "Total number of redis command errors",
}, []string{"command"})

func IncRedisError(command string) {
	RedisErrors.WithLabelValues(command).Inc()
}
