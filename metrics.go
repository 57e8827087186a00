package zipstate

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    lookups *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordLookup(d time.Duration, found bool, err error) {
//	    p.lookups.WithLabelValues(strconv.FormatBool(found)).Inc()
//	}
type MetricsCollector interface {
	// RecordLoad is called once per Open with the time spent obtaining the
	// dataset and the number of ZIP codes it holds.
	RecordLoad(duration time.Duration, entries int, err error)

	// RecordLookup is called after each ZIP code lookup. err is non-nil for
	// malformed codes; found is false for valid but unassigned codes.
	RecordLookup(duration time.Duration, found bool, err error)

	// RecordResolve is called after each state name/abbreviation resolution.
	RecordResolve(found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(time.Duration, int, error)    {}
func (NoopMetricsCollector) RecordLookup(time.Duration, bool, error) {}
func (NoopMetricsCollector) RecordResolve(bool)                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadTotalNanos   atomic.Int64
	Entries          atomic.Int64
	LookupCount      atomic.Int64
	LookupHits       atomic.Int64
	LookupMalformed  atomic.Int64
	LookupTotalNanos atomic.Int64
	ResolveCount     atomic.Int64
	ResolveMisses    atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(duration time.Duration, entries int, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.Entries.Store(int64(entries))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(duration time.Duration, found bool, err error) {
	b.LookupCount.Add(1)
	b.LookupTotalNanos.Add(duration.Nanoseconds())
	switch {
	case err != nil:
		b.LookupMalformed.Add(1)
	case found:
		b.LookupHits.Add(1)
	}
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(found bool) {
	b.ResolveCount.Add(1)
	if !found {
		b.ResolveMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:       b.LoadCount.Load(),
		LoadErrors:      b.LoadErrors.Load(),
		LoadAvgNanos:    avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		Entries:         b.Entries.Load(),
		LookupCount:     b.LookupCount.Load(),
		LookupHits:      b.LookupHits.Load(),
		LookupMalformed: b.LookupMalformed.Load(),
		LookupAvgNanos:  avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
		ResolveCount:    b.ResolveCount.Load(),
		ResolveMisses:   b.ResolveMisses.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount       int64
	LoadErrors      int64
	LoadAvgNanos    int64
	Entries         int64
	LookupCount     int64
	LookupHits      int64
	LookupMalformed int64
	LookupAvgNanos  int64
	ResolveCount    int64
	ResolveMisses   int64
}
