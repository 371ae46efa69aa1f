package column

import (
	"github.com/hupe1980/tabula/bitmap"
)

// Select returns a new column holding the rows in rows, in ascending row
// order. The result never shares storage with c. Rows beyond Size fail with an
// *IndexError before anything is copied.
func (c *Typed[T]) Select(rows *bitmap.Bitmap) (*Typed[T], error) {
	if rows == nil {
		return c.withData(make([]T, 0)), nil
	}
	if last, ok := rows.Max(); ok && last >= len(c.data) {
		return nil, &IndexError{Column: c.name, Index: last, Size: len(c.data)}
	}
	out := make([]T, 0, rows.Cardinality())
	rows.ForEach(func(row int) bool {
		out = append(out, c.data[row])
		return true
	})
	return c.withData(out), nil
}
