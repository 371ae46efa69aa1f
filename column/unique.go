package column

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/tabula/internal/conv"
)

// Unique returns a new column holding each distinct value once, missing
// included. The order of the result is unspecified.
//
// Values are deduplicated in a roaring bitmap keyed on their integer
// encoding; categories are deduplicated by dictionary.
func (c *Typed[T]) Unique() *Typed[T] {
	out := c.EmptyCopy()
	out.name = c.name + " Unique values"

	switch {
	case c.kind.key == nil:
		seen := make(map[T]struct{}, len(c.data))
		for _, v := range c.data {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out.data = append(out.data, v)
			}
		}
	case c.kind.wide:
		rb := c.wideKeys()
		out.data = make([]T, 0, rb.GetCardinality())
		it := rb.Iterator()
		for it.HasNext() {
			out.data = append(out.data, c.kind.fromKey(it.Next()))
		}
	default:
		rb := c.narrowKeys()
		out.data = make([]T, 0, rb.GetCardinality())
		it := rb.Iterator()
		for it.HasNext() {
			out.data = append(out.data, c.kind.fromKey(uint64(it.Next())))
		}
	}
	return out
}

// CountUnique returns the number of distinct values, missing included.
func (c *Typed[T]) CountUnique() int {
	switch {
	case c.kind.key == nil:
		seen := make(map[T]struct{}, len(c.data))
		for _, v := range c.data {
			seen[v] = struct{}{}
		}
		return len(seen)
	case c.kind.wide:
		return conv.MustUint64ToInt(c.wideKeys().GetCardinality())
	default:
		return conv.MustUint64ToInt(c.narrowKeys().GetCardinality())
	}
}

// narrowKeys collects the keys of kinds that fit in 32 bits.
func (c *Typed[T]) narrowKeys() *roaring.Bitmap {
	rb := roaring.New()
	for _, v := range c.data {
		rb.Add(uint32(c.kind.key(v)))
	}
	return rb
}

func (c *Typed[T]) wideKeys() *roaring64.Bitmap {
	rb := roaring64.New()
	for _, v := range c.data {
		rb.Add(c.kind.key(v))
	}
	return rb
}
