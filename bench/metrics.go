package bench

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives the outcome of every timed phase.
// Implement this interface to integrate with monitoring systems; see
// PrometheusCollector for a ready-made Prometheus integration.
type MetricsCollector interface {
	// RecordInsert is called after a single-insert phase of count inserts.
	RecordInsert(impl string, kind Kind, count int, duration time.Duration)

	// RecordBulkInsert is called after a bulk-insert phase.
	// err is nil if the batch was accepted.
	RecordBulkInsert(impl string, kind Kind, count int, duration time.Duration, err error)

	// RecordLookup is called after a lookup phase of count lookups,
	// misses of which did not find their key. op is OpLookup or
	// OpBulkLookup depending on how the map was filled.
	RecordLookup(impl string, kind Kind, op Op, count, misses int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(string, Kind, int, time.Duration)            {}
func (NoopMetricsCollector) RecordBulkInsert(string, Kind, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(string, Kind, Op, int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	InsertPhases     atomic.Int64
	InsertOps        atomic.Int64
	InsertTotalNanos atomic.Int64
	BulkPhases       atomic.Int64
	BulkOps          atomic.Int64
	BulkErrors       atomic.Int64
	BulkTotalNanos   atomic.Int64
	LookupPhases     atomic.Int64
	LookupOps        atomic.Int64
	LookupMisses     atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(_ string, _ Kind, count int, duration time.Duration) {
	b.InsertPhases.Add(1)
	b.InsertOps.Add(int64(count))
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordBulkInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBulkInsert(_ string, _ Kind, count int, duration time.Duration, err error) {
	b.BulkPhases.Add(1)
	b.BulkOps.Add(int64(count))
	b.BulkTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BulkErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(_ string, _ Kind, _ Op, count, misses int, duration time.Duration) {
	b.LookupPhases.Add(1)
	b.LookupOps.Add(int64(count))
	b.LookupMisses.Add(int64(misses))
	b.LookupTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertPhases:   b.InsertPhases.Load(),
		InsertOps:      b.InsertOps.Load(),
		InsertAvgNanos: avgNanos(b.InsertTotalNanos.Load(), b.InsertOps.Load()),
		BulkPhases:     b.BulkPhases.Load(),
		BulkOps:        b.BulkOps.Load(),
		BulkErrors:     b.BulkErrors.Load(),
		BulkAvgNanos:   avgNanos(b.BulkTotalNanos.Load(), b.BulkOps.Load()),
		LookupPhases:   b.LookupPhases.Load(),
		LookupOps:      b.LookupOps.Load(),
		LookupMisses:   b.LookupMisses.Load(),
		LookupAvgNanos: avgNanos(b.LookupTotalNanos.Load(), b.LookupOps.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
// Averages are per operation, not per phase.
type BasicMetricsStats struct {
	InsertPhases   int64
	InsertOps      int64
	InsertAvgNanos int64
	BulkPhases     int64
	BulkOps        int64
	BulkErrors     int64
	BulkAvgNanos   int64
	LookupPhases   int64
	LookupOps      int64
	LookupMisses   int64
	LookupAvgNanos int64
}
