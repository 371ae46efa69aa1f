// Package column provides typed, in-memory columns and the predicate,
// comparator and sort machinery built on them.
//
// # Types
//
// A column stores values of one primitive kind in a contiguous buffer:
//
//	Type       Go value    Missing sentinel
//	Int8       int8        math.MinInt8
//	Int16      int16       math.MinInt16
//	Int32      int32       math.MinInt32
//	Int64      int64       math.MinInt64
//	Float32    float32     NaN
//	Float64    float64     NaN
//	Boolean    Bool        MissingBool (math.MinInt8)
//	Category   string      ""
//	Temporal   Timestamp   MissingTimestamp (math.MinInt64)
//
// Missing is a value, not an absence: every row holds either real data or
// exactly the sentinel. Each sentinel is the minimum of its domain, so the
// natural ascending order puts missing values first.
//
// # Columns
//
// Typed[T] is the concrete column; Column is its type-erased interface used
// by tables:
//
//	c, _ := column.NewInt16("delta")
//	c.Add(5)
//	_ = c.AddCell("1,024") // grouping separators are stripped
//	_ = c.AddCell("NA")    // missing token → sentinel
//
// # Predicates
//
// Predicates evaluate to *bitmap.Bitmap row sets and never modify the column:
//
//	small := c.IsLessThan(10)
//	pos := column.IsPositive(c)
//	both := bitmap.And(small, pos)
//
// Ordering predicates follow the comparator order (missing is the minimum).
// Sign and parity predicates only match real values.
//
// # Sorting
//
// SortAscending and SortDescending reorder a single buffer in place.
// RowComparator exposes the order over row positions so a table can sort
// several columns consistently through a stable index permutation.
//
// # Thread Safety
//
// Columns are not safe for concurrent mutation. Predicate evaluation only
// reads the column and may run concurrently with other readers. Large scans
// and sorts are split across goroutines internally (see WithParallelism);
// this does not change their results.
package column
