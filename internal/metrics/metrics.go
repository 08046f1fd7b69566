package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "memberhub"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Access gate metrics
var (
	GateDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_decisions_total",
			Help:      "Access gate decisions by outcome",
		},
		[]string{"decision"},
	)

	MaintenanceChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "maintenance_checks_total",
			Help:      "Maintenance status checks by result (ok, active, error)",
		},
		[]string{"result"},
	)

	MaintenanceCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "maintenance_check_duration_seconds",
			Help:      "Maintenance status round-trip latency",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)
)

// Remote API metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Calls to the remote REST API by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)
)

// Page navigator metrics
var (
	PageJumpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_jumps_total",
			Help:      "Jump-to-page submissions by result (accepted, rejected)",
		},
		[]string{"result"},
	)
)

// GateDecision records one access gate decision.
func GateDecision(decision string) {
	GateDecisionsTotal.WithLabelValues(decision).Inc()
}

// MaintenanceCheck records the result of one maintenance status check.
func MaintenanceCheck(result string, seconds float64) {
	MaintenanceChecksTotal.WithLabelValues(result).Inc()
	MaintenanceCheckDuration.Observe(seconds)
}

// APIRequest records one remote API call.
func APIRequest(endpoint, outcome string) {
	APIRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// PageJump records a jump-to-page submission.
func PageJump(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	PageJumpsTotal.WithLabelValues(result).Inc()
}
