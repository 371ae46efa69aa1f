package column

import (
	"runtime"
	"time"
)

// DefaultCapacity is the initial buffer capacity of a new column.
const DefaultCapacity = 128

// DefaultParallelThreshold is the column size from which scans and sorts are
// split across workers.
const DefaultParallelThreshold = 1 << 16

// DefaultMissingTokens are the cell tokens that map to the missing sentinel.
// Matching is exact and case-sensitive.
var DefaultMissingTokens = []string{"", "NA", "N/A", "NaN", "null", "-", "*"}

// DefaultTimeLayouts are tried in order when a Temporal cell is parsed.
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var defaultMissingSet = tokenSet(DefaultMissingTokens)

type options struct {
	capacity          int
	missingTokens     map[string]struct{}
	timeLayouts       []string
	workers           int
	parallelThreshold int
}

// Option configures a column.
type Option func(*options)

// WithCapacity sets the initial buffer capacity. Values <= 0 keep the default.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithMissingTokens replaces the set of cell tokens that AddCell maps to the
// missing sentinel. The empty token always counts as missing.
func WithMissingTokens(tokens ...string) Option {
	return func(o *options) {
		o.missingTokens = tokenSet(append([]string{""}, tokens...))
	}
}

// WithTimeLayouts replaces the layouts used to parse Temporal cells.
func WithTimeLayouts(layouts ...string) Option {
	return func(o *options) {
		if len(layouts) > 0 {
			o.timeLayouts = layouts
		}
	}
}

// WithParallelism configures how predicate scans and in-place sorts are split.
//
// workers <= 1 disables parallel execution. Columns smaller than threshold are
// always processed on the calling goroutine; threshold <= 0 keeps the default.
// Results are identical to sequential execution.
func WithParallelism(workers, threshold int) Option {
	return func(o *options) {
		o.workers = workers
		if threshold > 0 {
			o.parallelThreshold = threshold
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		capacity:          DefaultCapacity,
		missingTokens:     defaultMissingSet,
		timeLayouts:       DefaultTimeLayouts,
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
