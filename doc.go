// Package tabula provides an in-memory, column-oriented table for Go.
//
// Datasets are stored as typed columns (package column). Predicates evaluate
// to compressed row sets (package bitmap), which tables use to filter every
// column consistently. Multi-column sorts permute all columns by one stable
// index order.
//
// # Quick Start
//
//	t, _ := tabula.NewTable("sales")
//	region, _ := column.FromValues("region", []string{"north", "south", "north"})
//	units, _ := column.FromValues("units", []int32{12, 7, math.MinInt32})
//	_ = t.AddColumn(region, units)
//
//	north, _ := t.Filter(bitmap.And(region.IsEqualTo("north"), units.IsNotMissing()))
//	_ = t.SortOn(tabula.Asc("region"), tabula.Desc("units"))
//
// # Loading Records
//
// A Loader converts already-tokenised records, such as those of a
// *csv.Reader, through each column's cell rules:
//
//	l, _ := tabula.NewLoader([]tabula.ColumnSpec{
//	    {Name: "region", Type: column.Category},
//	    {Name: "units", Type: column.Int32},
//	}, tabula.WithHeaderRow())
//	t, err := l.Load(ctx, "sales", csv.NewReader(f))
//
// # Missing Values
//
// Every column type reserves one sentinel value for missing data (see
// column.Missing). Sentinels sort first in ascending order and are skipped by
// Min, Max and Sum.
//
// # Resource Limits
//
// WithMemoryLimit bounds the estimated storage of a table and the tables
// derived from it; growth beyond it fails with a *CapacityError.
// WithMaxWorkers and WithIngestRate bound the Loader. Close releases a
// table's reservation.
//
// # Thread Safety
//
// Tables and columns are not safe for concurrent mutation. Read-only use,
// including predicate evaluation and Filter, may run concurrently.
package tabula
