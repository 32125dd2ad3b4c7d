package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, c.Write(&pb))
	return pb.GetCounter().GetValue()
}

func TestRPCMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRPCMetrics(reg)
	m.ObserveRequest("/crm.v1.CRMService/Login", "OK", 0.01)
	m.ObserveRequest("/crm.v1.CRMService/Login", "OK", 0.02)
	m.ObserveConflict("create")
	m.ObserveEvent("appointment.created", false)

	assert.Equal(t, 2.0, counterValue(t, m.requestsTotal.WithLabelValues("/crm.v1.CRMService/Login", "OK")))
	assert.Equal(t, 1.0, counterValue(t, m.conflictsTotal.WithLabelValues("create")))
	assert.Equal(t, 1.0, counterValue(t, m.eventsPublished.WithLabelValues("appointment.created", "error")))
}

func TestRPCMetricsDefaultRegistry(t *testing.T) {
	m := NewRPCMetrics(nil)
	m.ObserveRequest("m", "OK", 0.5)
	prometheus.Unregister(m.requestsTotal)
	prometheus.Unregister(m.requestLatency)
	prometheus.Unregister(m.conflictsTotal)
	prometheus.Unregister(m.eventsPublished)
}

func TestRPCMetricsNilSafe(t *testing.T) {
	var m *RPCMetrics
	m.ObserveRequest("m", "OK", 0.1)
	m.ObserveConflict("check")
	m.ObserveEvent("appointment.deleted", true)
}
