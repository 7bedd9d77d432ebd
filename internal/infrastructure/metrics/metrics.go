package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by method, route and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devblog_http_requests_total",
		Help: "Total HTTP requests processed, labeled by method, route and status.",
	}, []string{"method", "route", "status"})

	// CacheHits counts lookups answered from a content cache.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devblog_cache_hits_total",
		Help: "Content cache hits by cache name.",
	}, []string{"cache"})

	// CacheMisses counts lookups that fell through to storage.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devblog_cache_misses_total",
		Help: "Content cache misses by cache name.",
	}, []string{"cache"})

	// RateLimitDenials counts requests rejected by the rate limiter.
	RateLimitDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devblog_rate_limit_denials_total",
		Help: "Requests denied with HTTP 429.",
	})
)
