package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"kmerscan/internal/kmer"
)

// Metrics holds the Prometheus collectors for a run.
type Metrics struct {
	Registry *prometheus.Registry

	WindowsTotal      prometheus.Counter
	AcceptedTotal     prometheus.Counter
	RejectedTotal     prometheus.Counter
	SkippedTotal      prometheus.Counter
	TablesTotal       *prometheus.CounterVec
	TableKmers        *prometheus.GaugeVec
	TableScanDuration prometheus.Histogram
	SequencesTotal    prometheus.Counter
	SequencesInFlight prometheus.Gauge
	SequenceDuration  prometheus.Histogram
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		WindowsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "kmerscan",
			Subsystem: "scan",
			Name:      "windows_total",
			Help:      "Windows visited across all k",
		}),
		AcceptedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "kmerscan",
			Subsystem: "scan",
			Name:      "accepted_total",
			Help:      "Occurrences accepted into a k-mer record",
		}),
		RejectedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "kmerscan",
			Subsystem: "scan",
			Name:      "rejected_total",
			Help:      "Occurrences rejected for overlapping the last accepted one",
		}),
		SkippedTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "kmerscan",
			Subsystem: "scan",
			Name:      "skipped_total",
			Help:      "Windows skipped because they contain N",
		}),
		TablesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kmerscan",
			Subsystem: "scan",
			Name:      "tables_total",
			Help:      "Tables built, by k",
		}, []string{"k"}),
		TableKmers: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "kmerscan",
			Subsystem: "scan",
			Name:      "table_kmers",
			Help:      "Distinct k-mers in the most recent table for k",
		}, []string{"k"}),
		TableScanDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kmerscan",
			Subsystem: "scan",
			Name:      "table_duration_seconds",
			Help:      "Time to build one table",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		SequencesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "kmerscan",
			Subsystem: "pipeline",
			Name:      "sequences_total",
			Help:      "Sequences scanned",
		}),
		SequencesInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "kmerscan",
			Subsystem: "pipeline",
			Name:      "sequences_in_flight",
			Help:      "Sequences currently being scanned",
		}),
		SequenceDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kmerscan",
			Subsystem: "pipeline",
			Name:      "sequence_duration_seconds",
			Help:      "Time to build the full k range for one sequence",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// ObserveTable records one finished table.
func (m *Metrics) ObserveTable(_ string, k, keys int, st kmer.ScanStats, took time.Duration) {
	label := strconv.Itoa(k)
	m.WindowsTotal.Add(float64(st.Windows))
	m.AcceptedTotal.Add(float64(st.Accepted))
	m.RejectedTotal.Add(float64(st.Rejected))
	m.SkippedTotal.Add(float64(st.Skipped))
	m.TablesTotal.WithLabelValues(label).Inc()
	m.TableKmers.WithLabelValues(label).Set(float64(keys))
	m.TableScanDuration.Observe(took.Seconds())
}

// SequenceStarted marks a sequence as in flight.
func (m *Metrics) SequenceStarted() { m.SequencesInFlight.Inc() }

// SequenceDone records a finished sequence.
func (m *Metrics) SequenceDone(took time.Duration) {
	m.SequencesInFlight.Dec()
	m.SequencesTotal.Inc()
	m.SequenceDuration.Observe(took.Seconds())
}
