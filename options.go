package tabula

import (
	"log/slog"

	"github.com/hupe1980/tabula/column"
	"github.com/hupe1980/tabula/internal/resource"
)

// DefaultBatchSize is the number of records the Loader converts at a time.
const DefaultBatchSize = 1024

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	limits           resource.Config
	columnOptions    []column.Option
	headerRow        bool
	batchSize        int
}

// Option configures tables and loaders.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for table operations.
// Pass nil to disable metrics collection (uses NoopMetricsCollector).
//
// Example with BasicMetricsCollector:
//
//	metrics := &tabula.BasicMetricsCollector{}
//	t, _ := tabula.NewTable("sales", tabula.WithMetricsCollector(metrics))
//	// ... filter, sort ...
//	stats := metrics.GetStats()
//	fmt.Printf("Filters: %d, Avg latency: %dns\n", stats.FilterCount, stats.FilterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tabula.NewJSONLogger(slog.LevelDebug)
//	t, _ := tabula.NewTable("sales", tabula.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMemoryLimit caps the estimated bytes held by a table and every table
// derived from it (filters, copies). Growth beyond the limit fails with a
// *CapacityError. 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.limits.MemoryLimitBytes = max(bytes, 0)
	}
}

// WithMaxWorkers limits how many columns the Loader converts concurrently.
// Values <= 0 use GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.limits.MaxWorkers = int64(max(n, 0))
	}
}

// WithIngestRate limits the number of records per second the Loader admits.
// 0 means unlimited.
func WithIngestRate(rowsPerSec int64) Option {
	return func(o *options) {
		o.limits.IngestRowsPerSec = max(rowsPerSec, 0)
	}
}

// WithColumnOptions sets the options of columns the table or loader creates
// itself, such as missing tokens or time layouts for parsing cells.
func WithColumnOptions(opts ...column.Option) Option {
	return func(o *options) {
		o.columnOptions = append(o.columnOptions, opts...)
	}
}

// WithHeaderRow makes the Loader skip the first record.
func WithHeaderRow() Option {
	return func(o *options) {
		o.headerRow = true
	}
}

// WithBatchSize sets how many records the Loader converts at a time.
// Values <= 0 keep DefaultBatchSize.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		batchSize:        DefaultBatchSize,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
