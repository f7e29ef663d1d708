// Package metrics holds the Prometheus collectors for the anoncreds binding.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics is safe for concurrent use. A nil *Metrics discards every
// observation.
type Metrics struct {
	NativeCalls          *prometheus.CounterVec
	NativeCallDuration   *prometheus.HistogramVec
	ErrorChannelMismatch prometheus.Counter
	LiveHandles          prometheus.Gauge
}

// New registers the collectors with reg. Passing nil uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		NativeCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "anoncreds_native_calls_total",
			Help: "Total number of calls into libanoncreds by function and result",
		}, []string{"function", "result"}),
		NativeCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "anoncreds_native_call_duration_seconds",
			Help:    "Duration of calls into libanoncreds, including error retrieval and output copies",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"function"}),
		ErrorChannelMismatch: factory.NewCounter(prometheus.CounterOpts{
			Name: "anoncreds_error_channel_mismatches_total",
			Help: "Failed calls whose error record belonged to a different call",
		}),
		LiveHandles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "anoncreds_live_handles",
			Help: "Native object handles wrapped and not yet released",
		}),
	}
}

func (m *Metrics) ObserveCall(function string, failed bool, d time.Duration) {
	if m == nil {
		return
	}
	result := ResultOK
	if failed {
		result = ResultError
	}
	m.NativeCalls.WithLabelValues(function, result).Inc()
	m.NativeCallDuration.WithLabelValues(function).Observe(d.Seconds())
}

func (m *Metrics) IncrementErrorChannelMismatch() {
	if m == nil {
		return
	}
	m.ErrorChannelMismatch.Inc()
}

func (m *Metrics) HandleCreated() {
	if m == nil {
		return
	}
	m.LiveHandles.Inc()
}

func (m *Metrics) HandleReleased() {
	if m == nil {
		return
	}
	m.LiveHandles.Dec()
}
