package metrics

import "github.com/prometheus/client_golang/prometheus"

// RPCMetrics exposes counters/histograms for the CRM RPC surface.
type RPCMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	conflictsTotal  *prometheus.CounterVec
	eventsPublished *prometheus.CounterVec
}

func NewRPCMetrics(reg prometheus.Registerer) *RPCMetrics {
	m := &RPCMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total RPCs handled, by method and status code",
		}, []string{"method", "code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crm",
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "Latency of RPC handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		conflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "schedule",
			Name:      "conflicts_total",
			Help:      "Appointment conflicts detected",
		}, []string{"source"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Appointment events handed to the broker",
		}, []string{"type", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency, m.conflictsTotal, m.eventsPublished)
	return m
}

func (m *RPCMetrics) ObserveRequest(method, code string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, code).Inc()
	m.requestLatency.WithLabelValues(method).Observe(seconds)
}

// ObserveConflict counts a detected overlap. source is "create", "update" or "check".
func (m *RPCMetrics) ObserveConflict(source string) {
	if m == nil {
		return
	}
	m.conflictsTotal.WithLabelValues(source).Inc()
}

func (m *RPCMetrics) ObserveEvent(eventType string, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.eventsPublished.WithLabelValues(eventType, status).Inc()
}
