package tabula

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/tabula/bitmap"
	"github.com/hupe1980/tabula/column"
)

// All returns the selection of every row.
func (t *Table) All() *bitmap.Bitmap {
	return bitmap.Range(0, t.RowCount())
}

// Not returns the rows of the table that are not in rows.
func (t *Table) Not(rows *bitmap.Bitmap) *bitmap.Bitmap {
	if rows == nil {
		return t.All()
	}
	return rows.Complement(t.RowCount())
}

// Filter returns a new table holding the selected rows of every column, in
// ascending row order. Selections are usually built from column predicates
// combined with bitmap.And, bitmap.Or and Table.Not:
//
//	age, _ := tabula.ColumnAs[int16](t, "age")
//	city, _ := tabula.ColumnAs[string](t, "city")
//	adults, err := t.Filter(bitmap.And(age.IsGreaterThanOrEqualTo(18), city.IsEqualTo("Oslo")))
//
// A selected row beyond RowCount fails with ErrArgument before anything is
// copied. The result never shares storage with t.
func (t *Table) Filter(rows *bitmap.Bitmap) (*Table, error) {
	start := time.Now()
	out, err := t.filter(rows)

	selected := 0
	if out != nil {
		selected = out.RowCount()
	}
	t.opts.metricsCollector.RecordFilter(selected, time.Since(start), err)
	t.opts.logger.LogFilter(context.Background(), t.name, selected, t.RowCount(), err)
	return out, err
}

// Where is an alias of Filter.
func (t *Table) Where(rows *bitmap.Bitmap) (*Table, error) {
	return t.Filter(rows)
}

func (t *Table) filter(rows *bitmap.Bitmap) (*Table, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = bitmap.New()
	}
	n := t.RowCount()
	if last, ok := rows.Max(); ok && last >= n {
		return nil, fmt.Errorf("%w: table %q has no row %d (rows: %d)", ErrArgument, t.name, last, n)
	}

	out := t.derive(t.name)
	if err := out.reserve(int64(rows.Cardinality()) * t.RowWidth()); err != nil {
		return nil, err
	}
	cols := make([]column.Column, len(t.columns))
	for i, c := range t.columns {
		sel, err := c.SelectColumn(rows)
		if err != nil {
			out.release(out.reserved)
			return nil, err
		}
		cols[i] = sel
	}
	out.attach(cols...)
	return out, nil
}

// Append adds the rows of other to the end of t. Both tables must have the
// same column names and types in the same order; otherwise t is left
// unchanged.
func (t *Table) Append(other *Table) error {
	start := time.Now()
	err := t.appendTable(other)

	rows := 0
	if other != nil {
		rows = other.RowCount()
	}
	t.opts.metricsCollector.RecordAppend(rows, time.Since(start), err)
	t.opts.logger.LogAppend(context.Background(), t.name, rows, err)
	return err
}

func (t *Table) appendTable(other *Table) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	if other == nil {
		return fmt.Errorf("%w: cannot append a nil table", ErrArgument)
	}
	if len(other.columns) != len(t.columns) {
		return fmt.Errorf("%w: table %q has %d columns, table %q has %d",
			ErrArgument, t.name, len(t.columns), other.name, len(other.columns))
	}
	for i, c := range t.columns {
		o := other.columns[i]
		if o.Name() != c.Name() {
			return fmt.Errorf("%w: column %d is %q in table %q and %q in table %q",
				ErrArgument, i, c.Name(), t.name, o.Name(), other.name)
		}
		if o.Type() != c.Type() {
			return &column.TypeMismatchError{Op: "append", Expected: c.Type(), Actual: o.Type()}
		}
	}

	if err := t.reserve(other.SizeInBytes()); err != nil {
		return err
	}
	for i, c := range t.columns {
		// Types are checked above, so Append cannot fail.
		_ = c.Append(other.columns[i])
	}
	return nil
}
