// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "complaint_http_requests_total",
			Help: "Total number of HTTP requests served by the complaint form",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "complaint_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "complaint_submissions_total",
			Help: "Submission attempts by outcome",
		},
		[]string{"outcome"},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "complaint_validation_failures_total",
			Help: "Field validation failures by field id",
		},
		[]string{"field"},
	)

	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "complaint_alerts_total",
			Help: "Blocking alerts raised during submission",
		},
		[]string{"kind"},
	)

	ProgressPercent = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "complaint_progress_percent",
			Help:    "Form completion percentage observed at submission time",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "complaint_sessions_active",
			Help: "Number of live form sessions",
		},
	)
)

// Submission outcome labels.
const (
	OutcomeSubmitted        = "submitted"
	OutcomeInvalidFields    = "invalid_fields"
	OutcomeMissingDocuments = "missing_documents"
	OutcomeNoDeclaration    = "no_declaration"
	OutcomeAlreadySubmitted = "already_submitted"
	OutcomeError            = "error"
)
