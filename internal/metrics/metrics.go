package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by route pattern and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_http_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks API request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_http_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ListingsDegraded counts reads served without live listing data
	ListingsDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_listings_degraded_total",
			Help: "Total number of listing reads that fell back to cached values",
		},
		[]string{"operation", "reason"},
	)

	// WalletBindings counts wallet bind and unbind outcomes
	WalletBindings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_wallet_bindings_total",
			Help: "Total number of wallet binding operations",
		},
		[]string{"operation", "status"},
	)

	// PlaysRecorded counts recorded plays
	PlaysRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_plays_recorded_total",
			Help: "Total number of recorded plays",
		},
	)

	// RoyaltyDistributions counts royalty distributions by status
	RoyaltyDistributions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_royalty_distributions_total",
			Help: "Total number of royalty distributions",
		},
		[]string{"status"},
	)

	// ReconcileRuns counts listing reconciliation runs by status
	ReconcileRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_reconcile_runs_total",
			Help: "Total number of listing reconciliation runs",
		},
		[]string{"status"},
	)

	// ReconcileCorrections counts cached listings rewritten from chain state
	ReconcileCorrections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "marketplace_reconcile_corrections_total",
			Help: "Total number of cached listings corrected from chain state",
		},
	)

	// ReconcileDuration tracks reconciliation run time
	ReconcileDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marketplace_reconcile_duration_seconds",
			Help:    "Listing reconciliation run duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
