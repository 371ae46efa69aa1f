// Package stats computes named aggregates over a column.
//
// It only consumes the column.Column interface (size, missing count, the
// float widening and the min/max/sum reductions), so tables can summarize
// columns of every type the same way.
package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/hupe1980/tabula/column"
)

// Description holds the aggregates of one column. Measures that do not apply
// to the column's type, or that have no real value to work on, are NaN.
type Description struct {
	Column  string
	Type    column.Type
	Count   int
	Missing int
	Unique  int
	Min     float64
	Max     float64
	Range   float64
	Sum     float64
}

// Measure is one named aggregate.
type Measure struct {
	Name  string
	Value float64
}

// Describe computes the aggregates of c.
func Describe(c column.Column) (Description, error) {
	if c == nil {
		return Description{}, fmt.Errorf("%w: cannot describe a nil column", column.ErrArgument)
	}

	d := Description{
		Column:  c.Name(),
		Type:    c.Type(),
		Count:   c.Size(),
		Missing: c.CountMissing(),
		Unique:  c.CountUnique(),
		Min:     math.NaN(),
		Max:     math.NaN(),
		Range:   math.NaN(),
		Sum:     math.NaN(),
	}

	var err error
	if d.Min, err = orNaN(c.MinFloat64()); err != nil {
		return Description{}, err
	}
	if d.Max, err = orNaN(c.MaxFloat64()); err != nil {
		return Description{}, err
	}
	if d.Sum, err = orNaN(c.Sum()); err != nil {
		return Description{}, err
	}
	d.Range = d.Max - d.Min

	return d, nil
}

// orNaN maps the expected reduction failures to NaN and passes anything else
// through.
func orNaN(v float64, err error) (float64, error) {
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, column.ErrNoData), errors.Is(err, column.ErrTypeMismatch):
		return math.NaN(), nil
	default:
		return math.NaN(), err
	}
}

// Measures returns the aggregates in presentation order.
func (d Description) Measures() []Measure {
	return []Measure{
		{Name: "Count", Value: float64(d.Count)},
		{Name: "Missing", Value: float64(d.Missing)},
		{Name: "Unique", Value: float64(d.Unique)},
		{Name: "Min", Value: d.Min},
		{Name: "Max", Value: d.Max},
		{Name: "Range", Value: d.Range},
		{Name: "Sum", Value: d.Sum},
	}
}

// FormatValue renders an aggregate for display. NaN renders empty.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
