package tabula

import (
	"github.com/hupe1980/tabula/column"
	"github.com/hupe1980/tabula/stats"
)

// Summary describes every column in one row: Column, Type, Count, Missing,
// Min, Max and Sum. Aggregates that do not apply to a column are missing.
func (t *Table) Summary() (*Table, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}

	copts := t.opts.columnOptions
	names, _ := column.NewCategory("Column", copts...)
	types, _ := column.NewCategory("Type", copts...)
	counts, _ := column.NewInt64("Count", copts...)
	missing, _ := column.NewInt64("Missing", copts...)
	mins, _ := column.NewFloat64("Min", copts...)
	maxs, _ := column.NewFloat64("Max", copts...)
	sums, _ := column.NewFloat64("Sum", copts...)

	for _, c := range t.columns {
		d, err := stats.Describe(c)
		if err != nil {
			return nil, err
		}
		names.Add(d.Column)
		types.Add(d.Type.String())
		counts.Add(int64(d.Count))
		missing.Add(int64(d.Missing))
		mins.Add(d.Min)
		maxs.Add(d.Max)
		sums.Add(d.Sum)
	}

	out := t.derive(t.name + " summary")
	if err := out.AddColumn(names, types, counts, missing, mins, maxs, sums); err != nil {
		return nil, err
	}
	return out, nil
}

// SummarizeColumn describes one column as a Measure/Value table named after
// the column.
func (t *Table) SummarizeColumn(name string) (*Table, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	d, err := stats.Describe(c)
	if err != nil {
		return nil, err
	}

	measures, _ := column.NewCategory("Measure", t.opts.columnOptions...)
	values, _ := column.NewFloat64("Value", t.opts.columnOptions...)
	for _, m := range d.Measures() {
		measures.Add(m.Name)
		values.Add(m.Value)
	}

	out := t.derive("Column: " + name)
	if err := out.AddColumn(measures, values); err != nil {
		return nil, err
	}
	return out, nil
}
