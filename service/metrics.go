package service

import (
	"time"

	"mytargets/domain"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "mytargets"

// Metrics are the adapter's own Prometheus collectors.
type Metrics struct {
	cycles        *prometheus.CounterVec
	writes        *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	targets       prometheus.Gauge
	skippedTicks  prometheus.Counter
	lastSuccess   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// Registration errors (duplicate names) panic, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cycles_total",
			Help:      "Poll cycles by outcome.",
		}, []string{"outcome"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "manifest_writes_total",
			Help:      "Targets file writes by kind (manifest, fallback) and result (ok, error).",
		}, []string{"kind", "result"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "registry_fetch_duration_seconds",
			Help:      "Duration of registry requests.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		targets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "manifest_targets",
			Help:      "Number of targets in the manifest on disk.",
		}),
		skippedTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "skipped_ticks_total",
			Help:      "Ticks skipped because the previous cycle was still running.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last cycle that read the registry successfully.",
		}),
	}
	reg.MustRegister(m.cycles, m.writes, m.fetchDuration, m.targets, m.skippedTicks, m.lastSuccess)
	return m
}

// ObserveFetch records the duration of one registry request.
func (m *Metrics) ObserveFetch(d time.Duration) {
	m.fetchDuration.Observe(d.Seconds())
}

// ObserveWrite counts a targets file write attempt.
func (m *Metrics) ObserveWrite(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.writes.WithLabelValues(kind, result).Inc()
}

// ObserveCycle counts a finished cycle. Cycles that reached the registry also move the
// last-success timestamp.
func (m *Metrics) ObserveCycle(res domain.CycleResult) {
	m.cycles.WithLabelValues(string(res.Outcome)).Inc()
	switch res.Outcome {
	case domain.CycleWritten, domain.CycleSkipped, domain.CyclePersistFailed:
		m.lastSuccess.Set(float64(res.FinishedAt.Unix()))
	}
}

// SetTargets sets the number of targets currently on disk.
func (m *Metrics) SetTargets(n int) {
	m.targets.Set(float64(n))
}

// SkippedTick counts a tick dropped by the overlap guard.
func (m *Metrics) SkippedTick() {
	m.skippedTicks.Inc()
}
