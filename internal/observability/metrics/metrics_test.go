package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContactMetrics(reg)

	m.ObserveSubmission(OutcomeOK)
	m.ObserveSubmission(OutcomeOK)
	m.ObserveSubmission(OutcomeSpam)

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues(OutcomeOK)); got != 2 {
		t.Errorf("expected 2 ok submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues(OutcomeSpam)); got != 1 {
		t.Errorf("expected 1 spam submission, got %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *ContactMetrics
	m.ObserveSubmission(OutcomeError)
	m.ObserveEmailSend("sent", 0.1)
}

func TestObserveEmailSend(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContactMetrics(reg)

	m.ObserveEmailSend("sent", 0.25)

	count := testutil.CollectAndCount(m.emailSendLatency)
	if count != 1 {
		t.Errorf("expected 1 histogram series, got %d", count)
	}
}
