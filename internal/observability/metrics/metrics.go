package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeSpam    = "spam"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// ContactMetrics exposes counters/histograms for the contact pipeline.
// All methods are nil-safe so handlers can run without metrics wired.
type ContactMetrics struct {
	submissionsTotal *prometheus.CounterVec
	emailSendLatency *prometheus.HistogramVec
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact",
			Subsystem: "form",
			Name:      "submissions_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"outcome"}),
		emailSendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "contact",
			Subsystem: "form",
			Name:      "email_send_seconds",
			Help:      "Latency of outbound lead notification sends",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.emailSendLatency)
	return m
}

func (m *ContactMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *ContactMetrics) ObserveEmailSend(status string, seconds float64) {
	if m == nil {
		return
	}
	m.emailSendLatency.WithLabelValues(status).Observe(seconds)
}
