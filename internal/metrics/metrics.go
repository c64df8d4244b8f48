package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the synchronization layer.
type Metrics struct {
	// RemoteFetchTotal counts remote fetches by result.
	RemoteFetchTotal *prometheus.CounterVec

	// RemoteWriteTotal counts remote writes by result.
	RemoteWriteTotal *prometheus.CounterVec

	// SyncQueueSize is the current number of pending remote writes.
	SyncQueueSize prometheus.Gauge

	// AppointmentsCreated counts public bookings accepted.
	AppointmentsCreated prometheus.Counter
}

// Results reported on fetch/write counters.
const (
	ResultOK        = "ok"
	ResultError     = "error"
	ResultForbidden = "forbidden"
)

// NewMetrics creates and registers Prometheus metrics.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RemoteFetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "remote_fetch_total",
				Help:      "Total number of remote store fetches",
			},
			[]string{"result"},
		),

		RemoteWriteTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "remote_write_total",
				Help:      "Total number of remote store writes",
			},
			[]string{"result", "label"},
		),

		SyncQueueSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sync_queue_size",
				Help:      "Current number of pending remote writes",
			},
		),

		AppointmentsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appointments_created_total",
				Help:      "Total number of public bookings accepted",
			},
		),
	}
}

// NewNop returns metrics bound to a throwaway registry, for tests.
func NewNop() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		RemoteFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "remote_fetch_total"},
			[]string{"result"},
		),
		RemoteWriteTotal: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "remote_write_total"},
			[]string{"result", "label"},
		),
		SyncQueueSize: factory.NewGauge(
			prometheus.GaugeOpts{Name: "sync_queue_size"},
		),
		AppointmentsCreated: factory.NewCounter(
			prometheus.CounterOpts{Name: "appointments_created_total"},
		),
	}
}

func (m *Metrics) IncFetch(result string) {
	m.RemoteFetchTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncWrite(result, label string) {
	m.RemoteWriteTotal.WithLabelValues(result, label).Inc()
}
