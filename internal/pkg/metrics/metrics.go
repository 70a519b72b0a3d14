// Package metrics exposes the Prometheus collectors used by the HTTP layer
// and the rule evaluation job. All collectors are registered on the default
// registry and served via promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by route, method and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	// HTTPRequestDuration observes HTTP request latency by route and method.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	// SweepRunsTotal counts rule evaluation sweeps by outcome.
	SweepRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rule_evaluation_sweeps_total",
			Help: "Total number of rule evaluation sweeps",
		},
		[]string{"outcome"},
	)

	// SweepAlertsCreated counts alerts raised by evaluation sweeps.
	SweepAlertsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rule_evaluation_alerts_created_total",
			Help: "Total number of alerts created by evaluation sweeps",
		},
	)

	// SweepNotificationsCreated counts notifications fanned out by sweeps.
	SweepNotificationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rule_evaluation_notifications_created_total",
			Help: "Total number of notifications created by evaluation sweeps",
		},
	)

	// SweepFailedEvaluations counts rule/order pairs whose evaluation failed.
	SweepFailedEvaluations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rule_evaluation_failures_total",
			Help: "Total number of failed rule/order evaluations",
		},
	)

	// SweepDuration observes the wall time of whole evaluation sweeps.
	SweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rule_evaluation_sweep_duration_seconds",
			Help:    "Duration of rule evaluation sweeps in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		SweepRunsTotal,
		SweepAlertsCreated,
		SweepNotificationsCreated,
		SweepFailedEvaluations,
		SweepDuration,
	)
}
