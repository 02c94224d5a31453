// Package metrics exposes Prometheus instrumentation for the SLA engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MessagesIngested counts processed inbound messages by outcome
	// (request, faq, accountant_reply, skipped, spam, gratitude, clarification).
	MessagesIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slamon_messages_ingested_total",
		Help: "Inbound chat messages processed, by outcome.",
	}, []string{"outcome"})

	// ClassificationsTotal counts classification verdicts by category and source.
	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slamon_classifications_total",
		Help: "Classification verdicts, by category and source layer.",
	}, []string{"category", "source"})

	// AlertsCreated counts SLA alerts by type.
	AlertsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slamon_alerts_created_total",
		Help: "SLA alerts created, by alert type.",
	}, []string{"alert_type"})

	// EscalationLevel tracks the highest escalation level reached per alert.
	EscalationLevel = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slamon_escalation_level",
		Help:    "Escalation level reached when a request was resolved.",
		Buckets: []float64{0, 1, 2, 3, 4, 5},
	})

	// DeliveriesTotal counts alert message deliveries by result.
	DeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slamon_deliveries_total",
		Help: "Alert deliveries to recipients, by result (delivered, failed, blocked).",
	}, []string{"result"})

	// ResponseTime observes accountant response time in minutes.
	ResponseTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slamon_response_time_minutes",
		Help:    "Minutes from client request to first accountant reply.",
		Buckets: []float64{5, 15, 30, 48, 60, 90, 120, 240, 480},
	})

	// TimersFired counts fired timer jobs by type.
	TimersFired = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slamon_timers_fired_total",
		Help: "Timer jobs fired, by job type.",
	}, []string{"job_type"})

	// ReconcileRuns counts reconciliation sweeps and what they repaired.
	ReconcileRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slamon_reconcile_actions_total",
		Help: "Reconciliation sweep actions, by kind (rescheduled, breached, already_active).",
	}, []string{"kind"})

	// FeedbackRatings observes survey ratings.
	FeedbackRatings = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "slamon_feedback_rating",
		Help:    "Client satisfaction survey ratings.",
		Buckets: []float64{1, 2, 3, 4, 5},
	})
)

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
