package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Job outcome labels reported by the worker.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeFailed    = "failed"
	OutcomeError     = "error"
)

// WithdrawalMetrics contains all metrics for withdrawal job processing
type WithdrawalMetrics struct {
	// Processed jobs counter, labelled by terminal outcome
	jobsProcessed *prometheus.CounterVec

	// End-to-end job duration histogram
	jobDuration *prometheus.HistogramVec

	// Jobs currently waiting in the queue
	queueDepth prometheus.Gauge

	// Requests stuck in a non-terminal state, set by the periodic sweep
	stuckRequests prometheus.Gauge
}

// NewWithdrawalMetrics creates a new instance of withdrawal metrics
func NewWithdrawalMetrics() *WithdrawalMetrics {
	return &WithdrawalMetrics{
		jobsProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_backend_withdrawal_jobs_total",
				Help: "Total number of processed withdrawal jobs",
			},
			[]string{"outcome"},
		),

		jobDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_backend_withdrawal_job_duration_seconds",
				Help:    "End-to-end duration of withdrawal jobs in seconds",
				Buckets: []float64{0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0, 120.0, 300.0},
			},
			[]string{"outcome"},
		),

		queueDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "payout_backend_withdrawal_queue_depth",
				Help: "Number of withdrawal jobs waiting in the queue",
			},
		),

		stuckRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "payout_backend_withdrawal_stuck_requests",
				Help: "Number of withdrawal requests sitting in a non-terminal state past the sweep age",
			},
		),
	}
}

// MustRegister registers all withdrawal metrics with the provided registry
func (m *WithdrawalMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.jobsProcessed,
		m.jobDuration,
		m.queueDepth,
		m.stuckRequests,
	)
}

// RecordJob records one finished job with its outcome and duration
func (m *WithdrawalMetrics) RecordJob(outcome string, duration float64) {
	m.jobsProcessed.WithLabelValues(outcome).Inc()
	m.jobDuration.WithLabelValues(outcome).Observe(duration)
}

// SetQueueDepth updates the queue depth gauge
func (m *WithdrawalMetrics) SetQueueDepth(depth int) {
	m.queueDepth.Set(float64(depth))
}

// SetStuckRequests updates the stuck request gauge
func (m *WithdrawalMetrics) SetStuckRequests(count int) {
	m.stuckRequests.Set(float64(count))
}
