package column

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Reductions skip missing values. A column without any real value has no
// minimum, maximum or sum: they fail with ErrNoData instead of returning the
// sentinel or zero.

// Min returns the smallest real value.
func (c *Typed[T]) Min() (T, error) {
	return c.extreme("min", func(a, b T) bool { return cmp.Less(a, b) })
}

// Max returns the largest real value.
func (c *Typed[T]) Max() (T, error) {
	return c.extreme("max", func(a, b T) bool { return cmp.Less(b, a) })
}

func (c *Typed[T]) extreme(op string, better func(a, b T) bool) (T, error) {
	var best T
	found := false
	for _, v := range c.data {
		if c.kind.isMissing(v) {
			continue
		}
		if !found || better(v, best) {
			best, found = v, true
		}
	}
	if !found {
		return c.kind.missing, c.noData(op)
	}
	return best, nil
}

// Sum adds the real values. Int8, Int16, Int32 and Boolean kinds are summed
// exactly in int64 before widening; Int64 and floating kinds are summed in
// float64. Category and Temporal columns cannot be summed.
func (c *Typed[T]) Sum() (float64, error) {
	if !c.kind.typ.IsNumeric() {
		return 0, &TypeMismatchError{Op: "sum", Expected: Float64, Actual: c.kind.typ}
	}
	if c.kind.toInt != nil && c.kind.typ != Int64 {
		s, err := c.SumInt64()
		return float64(s), err
	}
	sum, found := 0.0, false
	for _, v := range c.data {
		if !c.kind.isMissing(v) {
			sum += c.kind.toFloat(v)
			found = true
		}
	}
	if !found {
		return 0, c.noData("sum")
	}
	return sum, nil
}

// SumInt64 adds the real values of an integer or boolean column exactly.
// A sum outside the int64 range fails with ErrArgument.
func (c *Typed[T]) SumInt64() (int64, error) {
	if c.kind.toInt == nil {
		return 0, &TypeMismatchError{Op: "sum", Expected: Int64, Actual: c.kind.typ}
	}
	var sum int64
	found := false
	for _, v := range c.data {
		if c.kind.isMissing(v) {
			continue
		}
		x := c.kind.toInt(v)
		next := sum + x
		if (sum^x) >= 0 && (sum^next) < 0 {
			return 0, fmt.Errorf("%w: sum of column %q overflows int64", ErrArgument, c.name)
		}
		sum, found = next, true
	}
	if !found {
		return 0, c.noData("sum")
	}
	return sum, nil
}

// MinFloat64 returns Min widened to float64.
func (c *Typed[T]) MinFloat64() (float64, error) {
	return c.widen(c.Min())
}

// MaxFloat64 returns Max widened to float64.
func (c *Typed[T]) MaxFloat64() (float64, error) {
	return c.widen(c.Max())
}

func (c *Typed[T]) widen(v T, err error) (float64, error) {
	if c.kind.toFloat == nil {
		return math.NaN(), &TypeMismatchError{Op: "widen", Expected: Float64, Actual: c.kind.typ}
	}
	if err != nil {
		return math.NaN(), err
	}
	return c.kind.toFloat(v), nil
}

// ToFloat64s widens every value to float64 for statistics. Missing values
// become NaN. Widening is exact except for Int64 and Temporal magnitudes
// above 2^53; Category columns yield all NaN.
func (c *Typed[T]) ToFloat64s() []float64 {
	out := make([]float64, len(c.data))
	for i, v := range c.data {
		if c.kind.toFloat == nil || c.kind.isMissing(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = c.kind.toFloat(v)
	}
	return out
}

// Top returns a new column with the n largest real values, largest first.
func (c *Typed[T]) Top(n int) *Typed[T] {
	out := c.realValues()
	slices.SortFunc(out.data, func(a, b T) int { return cmp.Compare(b, a) })
	out.data = out.data[:min(max(n, 0), len(out.data))]
	return out
}

// Bottom returns a new column with the n smallest real values, smallest first.
func (c *Typed[T]) Bottom(n int) *Typed[T] {
	out := c.realValues()
	slices.Sort(out.data)
	out.data = out.data[:min(max(n, 0), len(out.data))]
	return out
}

func (c *Typed[T]) realValues() *Typed[T] {
	out := c.EmptyCopy()
	out.data = make([]T, 0, len(c.data))
	for _, v := range c.data {
		if !c.kind.isMissing(v) {
			out.data = append(out.data, v)
		}
	}
	return out
}

func (c *Typed[T]) noData(op string) error {
	return fmt.Errorf("%w: %s of column %q", ErrNoData, op, c.name)
}
