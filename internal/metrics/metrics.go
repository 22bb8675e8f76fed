// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cognitracker"

var (
	// HTTPRequestsTotal counts HTTP requests.
	// Labels: method, route, status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency.
	// Labels: method, route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ReportsGenerated counts generated reports.
	// Labels: period (7, 14, 30)
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "reports_generated_total",
			Help:      "Total number of period reports generated",
		},
		[]string{"period"},
	)

	// CoachCompletions counts AI text completions.
	// Labels: kind (coach, narrative), outcome (ok, fallback)
	CoachCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coach",
			Name:      "completions_total",
			Help:      "Total number of AI text completions by outcome",
		},
		[]string{"kind", "outcome"},
	)

	// RecordsImported counts records appended by imports.
	// Labels: kind (ema, session)
	RecordsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "records_imported_total",
			Help:      "Total number of records appended by data imports",
		},
		[]string{"kind"},
	)
)

// ObserveReport records one generated report.
func ObserveReport(periodDays int) {
	ReportsGenerated.WithLabelValues(strconv.Itoa(periodDays)).Inc()
}

// ObserveCompletion records the outcome of one AI text completion.
func ObserveCompletion(kind string, fallback bool) {
	outcome := "ok"
	if fallback {
		outcome = "fallback"
	}
	CoachCompletions.WithLabelValues(kind, outcome).Inc()
}
