package tabula

import (
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    filterCounter   prometheus.Counter
//	    sortHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordFilter(rows int, duration time.Duration, err error) {
//	    p.filterCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordFilter is called after each filter operation.
	// rows is the number of selected rows, err is nil if successful.
	RecordFilter(rows int, duration time.Duration, err error)

	// RecordSort is called after each multi-column sort.
	// rows is the table size, keys the number of sort keys.
	RecordSort(rows, keys int, duration time.Duration, err error)

	// RecordAppend is called after one table is appended onto another.
	RecordAppend(rows int, duration time.Duration, err error)

	// RecordLoad is called after each Loader run.
	// rows is the number of records read, including those of a failed load.
	RecordLoad(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFilter(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSort(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordAppend(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
//
// Counter groups are padded to separate cache lines, so loaders and filters
// running on different goroutines do not contend on one line.
type BasicMetricsCollector struct {
	FilterCount      atomic.Int64
	FilterErrors     atomic.Int64
	FilterRows       atomic.Int64
	FilterTotalNanos atomic.Int64
	_                cpu.CacheLinePad
	SortCount        atomic.Int64
	SortErrors       atomic.Int64
	SortTotalNanos   atomic.Int64
	_                cpu.CacheLinePad
	AppendCount      atomic.Int64
	AppendErrors     atomic.Int64
	AppendRows       atomic.Int64
	_                cpu.CacheLinePad
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadRows         atomic.Int64
	LoadTotalNanos   atomic.Int64
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(rows int, duration time.Duration, err error) {
	b.FilterCount.Add(1)
	b.FilterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FilterErrors.Add(1)
		return
	}
	b.FilterRows.Add(int64(rows))
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(rows, keys int, duration time.Duration, err error) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SortErrors.Add(1)
	}
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(rows int, duration time.Duration, err error) {
	b.AppendCount.Add(1)
	if err != nil {
		b.AppendErrors.Add(1)
		return
	}
	b.AppendRows.Add(int64(rows))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rows int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	b.LoadRows.Add(int64(rows))
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FilterCount:    b.FilterCount.Load(),
		FilterErrors:   b.FilterErrors.Load(),
		FilterRows:     b.FilterRows.Load(),
		FilterAvgNanos: avgNanos(b.FilterTotalNanos.Load(), b.FilterCount.Load()),
		SortCount:      b.SortCount.Load(),
		SortErrors:     b.SortErrors.Load(),
		SortAvgNanos:   avgNanos(b.SortTotalNanos.Load(), b.SortCount.Load()),
		AppendCount:    b.AppendCount.Load(),
		AppendErrors:   b.AppendErrors.Load(),
		AppendRows:     b.AppendRows.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadRows:       b.LoadRows.Load(),
		LoadAvgNanos:   avgNanos(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FilterCount    int64
	FilterErrors   int64
	FilterRows     int64
	FilterAvgNanos int64
	SortCount      int64
	SortErrors     int64
	SortAvgNanos   int64
	AppendCount    int64
	AppendErrors   int64
	AppendRows     int64
	LoadCount      int64
	LoadErrors     int64
	LoadRows       int64
	LoadAvgNanos   int64
}
