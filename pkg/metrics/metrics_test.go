package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordAdmission(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.RecordAdmission(OutcomeAdmitted)
	m.RecordAdmission(OutcomeAdmitted)
	m.RecordAdmission(OutcomeCapacityExceeded)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.admissions.WithLabelValues(OutcomeAdmitted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.admissions.WithLabelValues(OutcomeCapacityExceeded)))
}

func TestMetrics_GhostsIgnored(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.AddGhostsIgnored(3)
	m.AddGhostsIgnored(0)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.ghostsIgnored))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordAdmission(OutcomeAdmitted)
		m.ObserveHTTP("GET", "/api/v1/bays/status", 200, time.Millisecond)
		m.ObserveQuery("select", time.Millisecond, nil)
		m.AddGhostsIgnored(1)
		m.RecordNotificationFailure("webhook")
	})
}
