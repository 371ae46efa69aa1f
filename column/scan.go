package column

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/tabula/bitmap"
	"golang.org/x/sync/errgroup"
)

// span is a half-open row range [lo, hi).
type span struct {
	lo, hi int
}

// spans splits n rows into one range per worker, or a single range when the
// column is below the parallel threshold.
func (o *options) spans(n int) []span {
	if o.workers <= 1 || n < o.parallelThreshold || n < o.workers {
		return []span{{0, n}}
	}
	size := (n + o.workers - 1) / o.workers
	out := make([]span, 0, o.workers)
	for lo := 0; lo < n; lo += size {
		out = append(out, span{lo, min(lo+size, n)})
	}
	return out
}

// scan evaluates test for every row and returns the matching rows.
//
// Rows are independent, so large columns are evaluated range by range on an
// errgroup and the per-range bitmaps are unioned. The result is the same as a
// sequential pass.
func (c *Typed[T]) scan(test func(row int, v T) bool) *bitmap.Bitmap {
	parts := c.opts.spans(len(c.data))
	if len(parts) == 1 {
		return bitmap.FromSorted(c.collect(parts[0], test))
	}

	results := make([]*roaring.Bitmap, len(parts))
	var g errgroup.Group
	g.SetLimit(c.opts.workers)
	for i, s := range parts {
		g.Go(func() error {
			rb := roaring.New()
			rb.AddMany(c.collect(s, test))
			results[i] = rb
			return nil
		})
	}
	_ = g.Wait() // range workers never fail
	return bitmap.Wrap(roaring.FastOr(results...))
}

// collect returns the ascending rows of s that satisfy test. Row positions
// are bounded by conv.MaxRows, so they fit in uint32.
func (c *Typed[T]) collect(s span, test func(row int, v T) bool) []uint32 {
	var ids []uint32
	for i := s.lo; i < s.hi; i++ {
		if test(i, c.data[i]) {
			ids = append(ids, uint32(i))
		}
	}
	return ids
}
