package column

import (
	"fmt"

	"github.com/hupe1980/tabula/bitmap"
)

// Column is the type-erased view of a Typed column. It carries everything a
// table needs to align, filter, sort and summarize columns without knowing
// their value type.
type Column interface {
	fmt.Stringer

	Name() string
	SetName(name string) error
	Type() Type
	Size() int
	IsEmpty() bool
	Clear()

	// AddCell converts a cell token and appends it.
	AddCell(token string) error
	AddMissing()
	IsMissingAt(row int) bool
	CountMissing() int
	CellString(row int) string
	Print() string

	// Append concatenates a column of the same type.
	Append(other Column) error
	EmptyColumn() Column
	CloneColumn() Column
	// SelectColumn copies the rows in rows, in ascending order.
	SelectColumn(rows *bitmap.Bitmap) (Column, error)
	// PermuteColumn copies the rows in the given order.
	PermuteColumn(order []int) (Column, error)
	// Reorder rearranges the rows in place; order must be a permutation.
	Reorder(order []int) error

	RowComparator() RowComparator
	SortAscending()
	SortDescending()
	CountUnique() int
	IsMissing() *bitmap.Bitmap

	Sum() (float64, error)
	MinFloat64() (float64, error)
	MaxFloat64() (float64, error)
	ToFloat64s() []float64

	SizeInBytes() int64
	RowWidth() int64
	Owner() any
	Bind(owner any) error
	Unbind(owner any)
}

var (
	_ Column = (*Typed[int8])(nil)
	_ Column = (*Typed[int16])(nil)
	_ Column = (*Typed[int32])(nil)
	_ Column = (*Typed[int64])(nil)
	_ Column = (*Typed[float32])(nil)
	_ Column = (*Typed[float64])(nil)
	_ Column = (*Typed[Bool])(nil)
	_ Column = (*Typed[string])(nil)
	_ Column = (*Typed[Timestamp])(nil)
)

// NewOfType creates an empty column of the given type.
func NewOfType(t Type, name string, opts ...Option) (Column, error) {
	switch t {
	case Int8:
		return NewInt8(name, opts...)
	case Int16:
		return NewInt16(name, opts...)
	case Int32:
		return NewInt32(name, opts...)
	case Int64:
		return NewInt64(name, opts...)
	case Float32:
		return NewFloat32(name, opts...)
	case Float64:
		return NewFloat64(name, opts...)
	case Boolean:
		return NewBoolean(name, opts...)
	case Category:
		return NewCategory(name, opts...)
	case Temporal:
		return NewTemporal(name, opts...)
	}
	return nil, fmt.Errorf("%w: unsupported column type %s", ErrArgument, t)
}

// As returns c as a Typed[T]. It fails with a TypeMismatchError when c does
// not store T.
func As[T Value](c Column) (*Typed[T], error) {
	if t, ok := c.(*Typed[T]); ok {
		return t, nil
	}
	actual := Invalid
	if c != nil {
		actual = c.Type()
	}
	return nil, &TypeMismatchError{Op: "as", Expected: TypeOf[T](), Actual: actual}
}

// EmptyColumn implements Column.
func (c *Typed[T]) EmptyColumn() Column { return c.EmptyCopy() }

// CloneColumn implements Column.
func (c *Typed[T]) CloneColumn() Column { return c.Copy() }

// SelectColumn implements Column.
func (c *Typed[T]) SelectColumn(rows *bitmap.Bitmap) (Column, error) {
	out, err := c.Select(rows)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PermuteColumn implements Column.
func (c *Typed[T]) PermuteColumn(order []int) (Column, error) {
	out, err := c.Permute(order)
	if err != nil {
		return nil, err
	}
	return out, nil
}
