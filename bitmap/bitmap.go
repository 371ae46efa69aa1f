package bitmap

import (
	"iter"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/tabula/internal/conv"
)

// Bitmap is a compressed, ordered set of row positions.
// The zero value is not usable; create bitmaps with New, Of or Range.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Of creates a bitmap holding the given rows. Negative rows are ignored.
func Of(rows ...int) *Bitmap {
	b := New()
	for _, row := range rows {
		b.Add(row)
	}
	return b
}

// Range creates a bitmap holding every row in [lo, hi).
func Range(lo, hi int) *Bitmap {
	b := New()
	b.AddRange(lo, hi)
	return b
}

// Wrap takes ownership of rb. The caller must not use rb afterwards.
func Wrap(rb *roaring.Bitmap) *Bitmap {
	if rb == nil {
		rb = roaring.New()
	}
	return &Bitmap{rb: rb}
}

// FromSorted builds a bitmap from ascending members without per-item checks.
func FromSorted(ids []uint32) *Bitmap {
	b := New()
	b.rb.AddMany(ids)
	return b
}

// Roaring exposes the underlying roaring bitmap for read-only use.
func (b *Bitmap) Roaring() *roaring.Bitmap {
	return b.rb
}

// Add inserts row. It reports whether the row was newly added; rows outside
// the addressable range are rejected.
func (b *Bitmap) Add(row int) bool {
	id, err := conv.RowToUint32(row)
	if err != nil {
		return false
	}
	return b.rb.CheckedAdd(id)
}

// AddRange inserts every row in [lo, hi).
func (b *Bitmap) AddRange(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	if hi > conv.MaxRows {
		hi = conv.MaxRows
	}
	if lo >= hi {
		return
	}
	b.rb.AddRange(uint64(lo), uint64(hi))
}

// Remove deletes row from the set.
func (b *Bitmap) Remove(row int) {
	id, err := conv.RowToUint32(row)
	if err != nil {
		return
	}
	b.rb.Remove(id)
}

// Contains checks whether row is in the set.
func (b *Bitmap) Contains(row int) bool {
	id, err := conv.RowToUint32(row)
	if err != nil {
		return false
	}
	return b.rb.Contains(id)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of rows in the bitmap.
func (b *Bitmap) Cardinality() int {
	return conv.MustUint64ToInt(b.rb.GetCardinality())
}

// Min returns the smallest row. ok is false for an empty bitmap.
func (b *Bitmap) Min() (row int, ok bool) {
	if b.rb.IsEmpty() {
		return 0, false
	}
	return conv.Uint32ToRow(b.rb.Minimum()), true
}

// Max returns the largest row. ok is false for an empty bitmap.
func (b *Bitmap) Max() (row int, ok bool) {
	if b.rb.IsEmpty() {
		return 0, false
	}
	return conv.Uint32ToRow(b.rb.Maximum()), true
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// Equals reports whether both bitmaps hold the same rows.
func (b *Bitmap) Equals(other *Bitmap) bool {
	if other == nil {
		return false
	}
	return b.rb.Equals(other.rb)
}

// All returns an iterator over the rows in ascending order.
func (b *Bitmap) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(conv.Uint32ToRow(it.Next())) {
				return
			}
		}
	}
}

// ForEach calls fn for every row in ascending order until fn returns false.
func (b *Bitmap) ForEach(fn func(row int) bool) {
	it := b.rb.Iterator()
	for it.HasNext() {
		if !fn(conv.Uint32ToRow(it.Next())) {
			break
		}
	}
}

// ToArray returns the rows in ascending order.
func (b *Bitmap) ToArray() []int {
	out := make([]int, 0, b.Cardinality())
	it := b.rb.Iterator()
	for it.HasNext() {
		out = append(out, conv.Uint32ToRow(it.Next()))
	}
	return out
}

// And intersects the receiver with other in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Or unions other into the receiver in place.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// AndNot removes every row of other from the receiver in place.
func (b *Bitmap) AndNot(other *Bitmap) {
	b.rb.AndNot(other.rb)
}

// Xor computes the symmetric difference in place.
func (b *Bitmap) Xor(other *Bitmap) {
	b.rb.Xor(other.rb)
}

// Complement returns a new bitmap holding every row of [0, size) that is not
// in b.
func (b *Bitmap) Complement(size int) *Bitmap {
	if size <= 0 {
		return New()
	}
	if size > conv.MaxRows {
		size = conv.MaxRows
	}
	out := &Bitmap{rb: roaring.Flip(b.rb, 0, uint64(size))}
	return out.clip(size)
}

// clip drops rows at or beyond size.
func (b *Bitmap) clip(size int) *Bitmap {
	if last, ok := b.Max(); ok && last >= size {
		b.rb.RemoveRange(uint64(size), uint64(last)+1)
	}
	return b
}

// Clear removes all rows from the bitmap.
func (b *Bitmap) Clear() {
	b.rb.Clear()
}

// GetSizeInBytes returns the size of the bitmap in bytes.
func (b *Bitmap) GetSizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}

// String renders the set as {r0, r1, ...}.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	b.ForEach(func(row int) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(row))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
