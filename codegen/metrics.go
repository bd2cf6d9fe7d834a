package codegen

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the run counters of the generator. Counters accumulate
// across runs of one process, as in watch mode.
type Metrics struct {
	registry *prometheus.Registry

	ClassesEmitted    prometheus.Counter
	ClassesFailed     *prometheus.CounterVec
	PropertiesEmitted prometheus.Counter
	PropertiesSkipped prometheus.Counter
	DocumentsFailed   prometheus.Counter
	LastRunTimestamp  prometheus.Gauge
}

// NewMetrics creates the metrics on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.ClassesEmitted = promauto.With(m.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ontogen_classes_emitted_total",
			Help: "Total number of class headers emitted",
		},
	)

	m.ClassesFailed = promauto.With(m.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ontogen_classes_failed_total",
			Help: "Total number of classes that failed to generate",
		},
		[]string{"kind"},
	)

	m.PropertiesEmitted = promauto.With(m.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ontogen_properties_emitted_total",
			Help: "Total number of property accessor triplets emitted",
		},
	)

	m.PropertiesSkipped = promauto.With(m.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ontogen_properties_skipped_total",
			Help: "Total number of properties skipped for lack of a range",
		},
	)

	m.DocumentsFailed = promauto.With(m.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ontogen_documents_failed_total",
			Help: "Total number of ontology documents that failed to parse",
		},
	)

	m.LastRunTimestamp = promauto.With(m.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ontogen_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		},
	)

	return m
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRun adds the statistics of one run.
func (m *Metrics) RecordRun(stats Stats, documentsFailed int, at time.Time) {
	m.ClassesEmitted.Add(float64(stats.ClassesEmitted))
	for kind, n := range stats.FailuresByKind {
		m.ClassesFailed.WithLabelValues(kind).Add(float64(n))
	}
	m.PropertiesEmitted.Add(float64(stats.PropertiesEmitted))
	m.PropertiesSkipped.Add(float64(stats.PropertiesSkipped))
	m.DocumentsFailed.Add(float64(documentsFailed))
	m.LastRunTimestamp.Set(float64(at.Unix()))
}

// WriteFile writes the metrics in text exposition format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
