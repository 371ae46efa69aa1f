package column

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Typed is a named column of values of one primitive kind, stored in a
// contiguous buffer. Missing values are stored in place as the kind's
// sentinel (see Missing).
//
// A Typed column is not safe for concurrent mutation. Concurrent reads,
// including predicate evaluation, are safe while no goroutine mutates it.
type Typed[T Value] struct {
	name  string
	kind  *kind[T]
	data  []T
	opts  options
	owner any
}

// New creates an empty column. It fails if name is empty.
func New[T Value](name string, opts ...Option) (*Typed[T], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: column name must not be empty", ErrArgument)
	}
	o := applyOptions(opts)
	return &Typed[T]{
		name: name,
		kind: kindOf[T](),
		data: make([]T, 0, o.capacity),
		opts: o,
	}, nil
}

// FromValues creates a column holding a copy of values.
func FromValues[T Value](name string, values []T, opts ...Option) (*Typed[T], error) {
	c, err := New[T](name, append(opts, WithCapacity(len(values)))...)
	if err != nil {
		return nil, err
	}
	c.data = append(c.data, values...)
	return c, nil
}

// NewInt8 creates an empty Int8 column.
func NewInt8(name string, opts ...Option) (*Typed[int8], error) { return New[int8](name, opts...) }

// NewInt16 creates an empty Int16 column.
func NewInt16(name string, opts ...Option) (*Typed[int16], error) { return New[int16](name, opts...) }

// NewInt32 creates an empty Int32 column.
func NewInt32(name string, opts ...Option) (*Typed[int32], error) { return New[int32](name, opts...) }

// NewInt64 creates an empty Int64 column.
func NewInt64(name string, opts ...Option) (*Typed[int64], error) { return New[int64](name, opts...) }

// NewFloat32 creates an empty Float32 column.
func NewFloat32(name string, opts ...Option) (*Typed[float32], error) {
	return New[float32](name, opts...)
}

// NewFloat64 creates an empty Float64 column.
func NewFloat64(name string, opts ...Option) (*Typed[float64], error) {
	return New[float64](name, opts...)
}

// NewBoolean creates an empty Boolean column.
func NewBoolean(name string, opts ...Option) (*Typed[Bool], error) { return New[Bool](name, opts...) }

// NewCategory creates an empty Category column.
func NewCategory(name string, opts ...Option) (*Typed[string], error) {
	return New[string](name, opts...)
}

// NewTemporal creates an empty Temporal column.
func NewTemporal(name string, opts ...Option) (*Typed[Timestamp], error) {
	return New[Timestamp](name, opts...)
}

// Name returns the column name.
func (c *Typed[T]) Name() string { return c.name }

// SetName renames the column. It fails if name is empty.
func (c *Typed[T]) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: column name must not be empty", ErrArgument)
	}
	c.name = name
	return nil
}

// Type returns the column type.
func (c *Typed[T]) Type() Type { return c.kind.typ }

// Size returns the number of rows.
func (c *Typed[T]) Size() int { return len(c.data) }

// IsEmpty reports whether the column has no rows.
func (c *Typed[T]) IsEmpty() bool { return len(c.data) == 0 }

// Clear removes all rows. The buffer capacity is retained.
func (c *Typed[T]) Clear() { c.data = c.data[:0] }

// Grow makes room for n more rows without reallocating.
func (c *Typed[T]) Grow(n int) {
	if n > 0 {
		c.data = slices.Grow(c.data, n)
	}
}

// Add appends one value, real or missing.
func (c *Typed[T]) Add(v T) { c.data = append(c.data, v) }

// AddMissing appends the missing sentinel.
func (c *Typed[T]) AddMissing() { c.data = append(c.data, c.kind.missing) }

// Set overwrites the value at index.
func (c *Typed[T]) Set(index int, v T) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.data[index] = v
	return nil
}

// Get returns the raw value at index, which may be the missing sentinel.
func (c *Typed[T]) Get(index int) (T, error) {
	if err := c.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return c.data[index], nil
}

// IsMissingAt reports whether the value at row is missing. Rows outside the
// column are reported as not missing.
func (c *Typed[T]) IsMissingAt(row int) bool {
	if row < 0 || row >= len(c.data) {
		return false
	}
	return c.kind.isMissing(c.data[row])
}

// CountMissing returns the number of missing values.
func (c *Typed[T]) CountMissing() int {
	n := 0
	for _, v := range c.data {
		if c.kind.isMissing(v) {
			n++
		}
	}
	return n
}

// FirstElement returns the first value, or the missing sentinel when the
// column is empty.
func (c *Typed[T]) FirstElement() T {
	if len(c.data) > 0 {
		return c.data[0]
	}
	return c.kind.missing
}

// Values returns an iterator over (row, value) pairs in row order.
func (c *Typed[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range c.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the values.
func (c *Typed[T]) ToSlice() []T { return slices.Clone(c.data) }

// EmptyCopy returns a new column with the same name, type and options and no
// rows.
func (c *Typed[T]) EmptyCopy() *Typed[T] {
	return &Typed[T]{
		name: c.name,
		kind: c.kind,
		data: make([]T, 0, c.opts.capacity),
		opts: c.opts,
	}
}

// Copy returns a value-for-value duplicate with independent storage.
func (c *Typed[T]) Copy() *Typed[T] {
	out := c.withData(slices.Clone(c.data))
	if out.data == nil {
		out.data = make([]T, 0, c.opts.capacity)
	}
	return out
}

// withData builds an unowned sibling column around data.
func (c *Typed[T]) withData(data []T) *Typed[T] {
	return &Typed[T]{name: c.name, kind: c.kind, data: data, opts: c.opts}
}

// Append concatenates other onto c. Both columns are left unmodified when the
// types differ.
func (c *Typed[T]) Append(other Column) error {
	if other == nil {
		return fmt.Errorf("%w: cannot append a nil column", ErrArgument)
	}
	o, ok := other.(*Typed[T])
	if !ok || other.Type() != c.Type() {
		return &TypeMismatchError{Op: "append", Expected: c.Type(), Actual: other.Type()}
	}
	c.data = append(c.data, o.data...)
	return nil
}

// CellString formats the value at row the way AddCell reads it back. Missing
// values format as the empty string.
func (c *Typed[T]) CellString(row int) string {
	if row < 0 || row >= len(c.data) {
		return ""
	}
	v := c.data[row]
	if c.kind.isMissing(v) {
		return ""
	}
	return c.kind.format(v)
}

// Title returns the header used by Print.
func (c *Typed[T]) Title() string {
	return "Column: " + c.name + "\n"
}

// Print renders the title followed by one value per line.
func (c *Typed[T]) Print() string {
	var sb strings.Builder
	sb.WriteString(c.Title())
	for i := range c.data {
		sb.WriteString(c.CellString(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (c *Typed[T]) String() string {
	return c.kind.typ.String() + " column: " + c.name
}

// SizeInBytes estimates the memory held by the values.
func (c *Typed[T]) SizeInBytes() int64 {
	return int64(len(c.data)) * c.kind.width
}

// RowWidth returns the estimated bytes per row.
func (c *Typed[T]) RowWidth() int64 { return c.kind.width }

// Owner returns the table that currently owns the column, if any.
func (c *Typed[T]) Owner() any { return c.owner }

// Bind records owner as the column's owner. It fails if another owner holds
// the column.
func (c *Typed[T]) Bind(owner any) error {
	if c.owner != nil && c.owner != owner {
		return fmt.Errorf("%w: column %q is owned by another table", ErrArgument, c.name)
	}
	c.owner = owner
	return nil
}

// Unbind releases the column if owner holds it.
func (c *Typed[T]) Unbind(owner any) {
	if c.owner == owner {
		c.owner = nil
	}
}

func (c *Typed[T]) checkIndex(index int) error {
	if index < 0 || index >= len(c.data) {
		return &IndexError{Column: c.name, Index: index, Size: len(c.data)}
	}
	return nil
}
