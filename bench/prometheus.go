package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements MetricsCollector with Prometheus metrics
// registered on its own registry.
//
// The registry can be served over HTTP or, for one-shot runs, written to a
// node_exporter textfile with WriteTextfile.
type PrometheusCollector struct {
	registry      *prometheus.Registry
	phaseDuration *prometheus.HistogramVec
	nsPerOp       *prometheus.GaugeVec
	operations    *prometheus.CounterVec
	lookupMisses  *prometheus.CounterVec
	bulkErrors    *prometheus.CounterVec
}

// NewPrometheusCollector creates a collector with a fresh registry.
func NewPrometheusCollector() *PrometheusCollector {
	labels := []string{"impl", "workload", "op"}

	p := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		phaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pairstore_phase_duration_seconds",
			Help:    "Wall-clock duration of a timed benchmark phase",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, labels),
		nsPerOp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pairstore_phase_ns_per_op",
			Help: "Average nanoseconds per operation of the last phase",
		}, labels),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pairstore_operations_total",
			Help: "Total number of measured operations",
		}, labels),
		lookupMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pairstore_lookup_misses_total",
			Help: "Total number of lookups that did not find their key",
		}, labels),
		bulkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pairstore_bulk_insert_errors_total",
			Help: "Total number of rejected bulk inserts",
		}, []string{"impl", "workload"}),
	}

	p.registry.MustRegister(
		p.phaseDuration,
		p.nsPerOp,
		p.operations,
		p.lookupMisses,
		p.bulkErrors,
	)
	return p
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusCollector) Registry() *prometheus.Registry {
	return p.registry
}

// WriteTextfile writes all metrics in the Prometheus text format to path.
func (p *PrometheusCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}

func (p *PrometheusCollector) observe(impl string, kind Kind, op Op, count int, duration time.Duration) {
	lv := []string{impl, string(kind), string(op)}
	p.phaseDuration.WithLabelValues(lv...).Observe(duration.Seconds())
	p.operations.WithLabelValues(lv...).Add(float64(count))
	if count > 0 {
		p.nsPerOp.WithLabelValues(lv...).Set(float64(duration.Nanoseconds()) / float64(count))
	}
}

// RecordInsert implements MetricsCollector.
func (p *PrometheusCollector) RecordInsert(impl string, kind Kind, count int, duration time.Duration) {
	p.observe(impl, kind, OpInsert, count, duration)
}

// RecordBulkInsert implements MetricsCollector.
func (p *PrometheusCollector) RecordBulkInsert(impl string, kind Kind, count int, duration time.Duration, err error) {
	if err != nil {
		p.bulkErrors.WithLabelValues(impl, string(kind)).Inc()
		return
	}
	p.observe(impl, kind, OpBulkInsert, count, duration)
}

// RecordLookup implements MetricsCollector.
func (p *PrometheusCollector) RecordLookup(impl string, kind Kind, op Op, count, misses int, duration time.Duration) {
	p.observe(impl, kind, op, count, duration)
	p.lookupMisses.WithLabelValues(impl, string(kind), string(op)).Add(float64(misses))
}

var (
	_ MetricsCollector = NoopMetricsCollector{}
	_ MetricsCollector = (*BasicMetricsCollector)(nil)
	_ MetricsCollector = (*PrometheusCollector)(nil)
)
