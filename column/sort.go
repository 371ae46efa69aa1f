package column

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// SortAscending sorts the column's own buffer in place. Sibling columns in a
// table are not reordered; use the table's SortOn for that.
//
// The sort is not stable, but equal keys always land in the same order for
// the same input. Missing values come first.
func (c *Typed[T]) SortAscending() {
	sortBuffer(c.data, cmp.Compare[T], &c.opts)
}

// SortDescending sorts the buffer in place with the ascending comparator's
// operands swapped, so missing values come last.
func (c *Typed[T]) SortDescending() {
	sortBuffer(c.data, func(a, b T) int { return cmp.Compare(b, a) }, &c.opts)
}

// sortBuffer sorts data. Large buffers are split into one range per worker,
// sorted concurrently and merged pairwise; the outcome depends only on the
// input and the worker count.
func sortBuffer[T Value](data []T, compare func(a, b T) int, o *options) {
	parts := o.spans(len(data))
	if len(parts) == 1 {
		slices.SortFunc(data, compare)
		return
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for _, s := range parts {
		g.Go(func() error {
			slices.SortFunc(data[s.lo:s.hi], compare)
			return nil
		})
	}
	_ = g.Wait() // range workers never fail

	scratch := make([]T, len(data))
	for len(parts) > 1 {
		merged := make([]span, 0, (len(parts)+1)/2)
		for i := 0; i < len(parts); i += 2 {
			if i+1 == len(parts) {
				merged = append(merged, parts[i])
				continue
			}
			a, b := parts[i], parts[i+1]
			merge(data[a.lo:a.hi], data[b.lo:b.hi], scratch[a.lo:b.hi], compare)
			copy(data[a.lo:b.hi], scratch[a.lo:b.hi])
			merged = append(merged, span{a.lo, b.hi})
		}
		parts = merged
	}
}

// merge writes the ordered union of a and b into dst. Ties take from a first.
func merge[T Value](a, b, dst []T, compare func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if compare(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}

// Permute returns a new column whose row i is row order[i] of c. order must
// have exactly Size entries, each a valid row.
func (c *Typed[T]) Permute(order []int) (*Typed[T], error) {
	if err := c.checkOrder(order); err != nil {
		return nil, err
	}
	out := make([]T, len(order))
	for i, j := range order {
		out[i] = c.data[j]
	}
	return c.withData(out), nil
}

// Reorder applies the permutation order to the column in place.
func (c *Typed[T]) Reorder(order []int) error {
	if err := c.checkOrder(order); err != nil {
		return err
	}
	out := make([]T, len(order), cap(c.data))
	for i, j := range order {
		out[i] = c.data[j]
	}
	c.data = out
	return nil
}

func (c *Typed[T]) checkOrder(order []int) error {
	if len(order) != len(c.data) {
		return fmt.Errorf("%w: column %q has %d rows, permutation has %d",
			ErrArgument, c.name, len(c.data), len(order))
	}
	for _, j := range order {
		if j < 0 || j >= len(c.data) {
			return &IndexError{Column: c.name, Index: j, Size: len(c.data)}
		}
	}
	return nil
}
