package column

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/tabula/bitmap"
)

// Predicate tests a single value.
type Predicate[T Value] func(v T) bool

// BiPredicate tests a value against a fixed operand.
type BiPredicate[T Value] func(v, operand T) bool

// Ordering predicates follow the comparator's total order, in which the
// missing sentinel is the smallest value. For any operand k,
// LessThan(k) and GreaterThanOrEqual(k) therefore partition every column.

// LessThan matches v < operand.
func LessThan[T Value]() BiPredicate[T] {
	return func(v, k T) bool { return cmp.Compare(v, k) < 0 }
}

// LessThanOrEqual matches v <= operand.
func LessThanOrEqual[T Value]() BiPredicate[T] {
	return func(v, k T) bool { return cmp.Compare(v, k) <= 0 }
}

// GreaterThan matches v > operand.
func GreaterThan[T Value]() BiPredicate[T] {
	return func(v, k T) bool { return cmp.Compare(v, k) > 0 }
}

// GreaterThanOrEqual matches v >= operand.
func GreaterThanOrEqual[T Value]() BiPredicate[T] {
	return func(v, k T) bool { return cmp.Compare(v, k) >= 0 }
}

// EqualTo matches v == operand. Two missing values are equal.
func EqualTo[T Value]() BiPredicate[T] {
	return func(v, k T) bool { return cmp.Compare(v, k) == 0 }
}

// NotEqualTo matches v != operand.
func NotEqualTo[T Value]() BiPredicate[T] {
	return func(v, k T) bool { return cmp.Compare(v, k) != 0 }
}

// Sign and parity predicates test real values only: a missing value never
// matches.

// Positive matches v > 0.
func Positive[T Number]() Predicate[T] {
	k := kindOf[T]()
	return func(v T) bool { return !k.isMissing(v) && v > 0 }
}

// Negative matches v < 0.
func Negative[T Number]() Predicate[T] {
	k := kindOf[T]()
	return func(v T) bool { return !k.isMissing(v) && v < 0 }
}

// NonNegative matches v >= 0.
func NonNegative[T Number]() Predicate[T] {
	k := kindOf[T]()
	return func(v T) bool { return !k.isMissing(v) && v >= 0 }
}

// Zero matches v == 0.
func Zero[T Number]() Predicate[T] {
	k := kindOf[T]()
	return func(v T) bool { return !k.isMissing(v) && v == 0 }
}

// Even matches even integers.
func Even[T Integer]() Predicate[T] {
	k := kindOf[T]()
	return func(v T) bool { return !k.isMissing(v) && v%2 == 0 }
}

// Odd matches odd integers.
func Odd[T Integer]() Predicate[T] {
	k := kindOf[T]()
	return func(v T) bool { return !k.isMissing(v) && v%2 != 0 }
}

// Apply evaluates p for every row and returns the matching rows. The column
// is not modified.
func (c *Typed[T]) Apply(p Predicate[T]) *bitmap.Bitmap {
	return c.scan(func(_ int, v T) bool { return p(v) })
}

// ApplyBi evaluates p against operand for every row.
func (c *Typed[T]) ApplyBi(p BiPredicate[T], operand T) *bitmap.Bitmap {
	return c.scan(func(_ int, v T) bool { return p(v, operand) })
}

// SelectIf returns a new column holding the values that satisfy p.
func (c *Typed[T]) SelectIf(p Predicate[T]) *Typed[T] {
	out := c.EmptyCopy()
	for _, v := range c.data {
		if p(v) {
			out.data = append(out.data, v)
		}
	}
	return out
}

// IsLessThan returns the rows whose value is below k.
func (c *Typed[T]) IsLessThan(k T) *bitmap.Bitmap { return c.ApplyBi(LessThan[T](), k) }

// IsLessThanOrEqualTo returns the rows whose value is at most k.
func (c *Typed[T]) IsLessThanOrEqualTo(k T) *bitmap.Bitmap {
	return c.ApplyBi(LessThanOrEqual[T](), k)
}

// IsGreaterThan returns the rows whose value is above k.
func (c *Typed[T]) IsGreaterThan(k T) *bitmap.Bitmap { return c.ApplyBi(GreaterThan[T](), k) }

// IsGreaterThanOrEqualTo returns the rows whose value is at least k.
func (c *Typed[T]) IsGreaterThanOrEqualTo(k T) *bitmap.Bitmap {
	return c.ApplyBi(GreaterThanOrEqual[T](), k)
}

// IsEqualTo returns the rows whose value equals k.
func (c *Typed[T]) IsEqualTo(k T) *bitmap.Bitmap { return c.ApplyBi(EqualTo[T](), k) }

// IsNotEqualTo returns the rows whose value differs from k.
func (c *Typed[T]) IsNotEqualTo(k T) *bitmap.Bitmap { return c.ApplyBi(NotEqualTo[T](), k) }

// IsBetween returns the rows with lo <= value <= hi.
func (c *Typed[T]) IsBetween(lo, hi T) *bitmap.Bitmap {
	return c.scan(func(_ int, v T) bool { return cmp.Compare(v, lo) >= 0 && cmp.Compare(v, hi) <= 0 })
}

// IsIn returns the rows whose value is one of values.
func (c *Typed[T]) IsIn(values ...T) *bitmap.Bitmap {
	set := make(map[T]struct{}, len(values))
	wantMissing := false
	for _, v := range values {
		if c.kind.isMissing(v) {
			wantMissing = true
			continue
		}
		set[v] = struct{}{}
	}
	return c.scan(func(_ int, v T) bool {
		if c.kind.isMissing(v) {
			return wantMissing
		}
		_, ok := set[v]
		return ok
	})
}

// IsMissing returns the rows holding the missing sentinel.
func (c *Typed[T]) IsMissing() *bitmap.Bitmap {
	return c.scan(func(_ int, v T) bool { return c.kind.isMissing(v) })
}

// IsNotMissing returns the rows holding real values.
func (c *Typed[T]) IsNotMissing() *bitmap.Bitmap {
	return c.scan(func(_ int, v T) bool { return !c.kind.isMissing(v) })
}

// IsEqualToColumn returns the rows where c and other hold equal values at the
// same position. Both columns must have the same type and length; this is
// checked before scanning.
func (c *Typed[T]) IsEqualToColumn(other Column) (*bitmap.Bitmap, error) {
	o, err := As[T](other)
	if err != nil {
		return nil, err
	}
	if o.Size() != c.Size() {
		return nil, fmt.Errorf("%w: column %q has %d rows, column %q has %d",
			ErrArgument, c.name, c.Size(), o.name, o.Size())
	}
	return c.scan(func(i int, v T) bool { return cmp.Compare(v, o.data[i]) == 0 }), nil
}

// IsPositive returns the rows with a value above zero.
func IsPositive[T Number](c *Typed[T]) *bitmap.Bitmap { return c.Apply(Positive[T]()) }

// IsNegative returns the rows with a value below zero.
func IsNegative[T Number](c *Typed[T]) *bitmap.Bitmap { return c.Apply(Negative[T]()) }

// IsNonNegative returns the rows with a value of at least zero.
func IsNonNegative[T Number](c *Typed[T]) *bitmap.Bitmap { return c.Apply(NonNegative[T]()) }

// IsZero returns the rows holding zero.
func IsZero[T Number](c *Typed[T]) *bitmap.Bitmap { return c.Apply(Zero[T]()) }

// IsEven returns the rows holding an even integer.
func IsEven[T Integer](c *Typed[T]) *bitmap.Bitmap { return c.Apply(Even[T]()) }

// IsOdd returns the rows holding an odd integer.
func IsOdd[T Integer](c *Typed[T]) *bitmap.Bitmap { return c.Apply(Odd[T]()) }
