package spoonacular

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_upstream_requests_total",
			Help: "Total number of requests sent to the recipe API",
		},
		[]string{"endpoint", "outcome"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipes_upstream_request_duration_seconds",
			Help:    "Recipe API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	responseCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipes_response_cache_total",
			Help: "Recipe API response cache results",
		},
		[]string{"endpoint", "result"},
	)
)
