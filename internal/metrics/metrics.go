package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Launch route outcomes.
const (
	RouteNone     = "none"
	RouteRoot     = "root"
	RouteResolved = "resolved"
	RouteFallback = "fallback"
	RouteReplay   = "replay"
)

var (
	// LaunchesTotal counts launch setups by routing outcome
	LaunchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_launches_total",
			Help: "Total number of mini app launches by routing outcome",
		},
		[]string{"outcome"},
	)

	// ShortURLLookupFailures counts short link lookups that fell back to the root path
	ShortURLLookupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_short_url_lookup_failures_total",
			Help: "Total number of failed short URL lookups",
		},
	)

	// ClaimsTotal counts free points claims by status
	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_points_claims_total",
			Help: "Total number of free points claims",
		},
		[]string{"status"},
	)

	// BackendRequestDuration tracks companion backend call latency
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_backend_request_duration_seconds",
			Help:    "Backend request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	// CooldownStreams tracks open cooldown event streams
	CooldownStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_cooldown_streams",
			Help: "Number of open cooldown streams",
		},
	)
)
