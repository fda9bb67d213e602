// Package metrics defines Prometheus metrics for gridpath.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridpath_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	// SolvesTotal counts solve attempts by outcome: found, no_path or rejected.
	SolvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridpath_solves_total",
			Help: "Total board solves by outcome",
		},
		[]string{"outcome"},
	)

	SolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_solve_duration_seconds",
			Help:    "Time to build a board, its graph and run BFS",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)

	PathLength = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridpath_path_length_edges",
			Help:    "Length in edges of paths found",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

// Solve outcomes used as the SolvesTotal label.
const (
	OutcomeFound    = "found"
	OutcomeNoPath   = "no_path"
	OutcomeRejected = "rejected"
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		SolvesTotal, SolveDuration, PathLength,
	)
}
