package tabula

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/tabula/column"
	"github.com/hupe1980/tabula/internal/resource"
)

// Table is a named, ordered collection of equal-length, uniquely named
// columns.
//
// Every mutating operation either keeps all columns the same length or fails
// without changing the table. A Table is not safe for concurrent mutation;
// concurrent read-only use (predicates, Filter, Summary) is safe.
type Table struct {
	name    string
	columns []column.Column
	byName  map[string]int
	opts    options

	// rc is shared with every table derived from this one.
	rc       *resource.Controller
	reserved int64
	closed   bool
}

// NewTable creates an empty table.
func NewTable(name string, optFns ...Option) (*Table, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: table name must not be empty", ErrArgument)
	}
	o := applyOptions(optFns)
	return newTable(name, o, resource.NewController(o.limits)), nil
}

func newTable(name string, o options, rc *resource.Controller) *Table {
	return &Table{
		name:   name,
		byName: make(map[string]int),
		opts:   o,
		rc:     rc,
	}
}

// derive creates an empty table that shares t's options and memory budget.
func (t *Table) derive(name string) *Table {
	return newTable(name, t.opts, t.rc)
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.columns) }

// RowCount returns the number of rows, 0 for a table without columns.
func (t *Table) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Size()
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the columns in order. The slice is a copy; the columns are
// not.
func (t *Table) Columns() []column.Column {
	return slices.Clone(t.columns)
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (column.Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: table %q has no column %q", ErrArgument, t.name, name)
	}
	return t.columns[i], nil
}

// ColumnAt returns the column at position i.
func (t *Table) ColumnAt(i int) (column.Column, error) {
	if i < 0 || i >= len(t.columns) {
		return nil, fmt.Errorf("%w: table %q has no column at %d", ErrArgument, t.name, i)
	}
	return t.columns[i], nil
}

// ColumnAs returns the named column of t as a Typed[T].
func ColumnAs[T column.Value](t *Table, name string) (*column.Typed[T], error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return column.As[T](c)
}

// AddColumn adds columns to the table. The batch is all or nothing: it fails
// without adding anything when a column is nil, a name is taken, the lengths
// differ, a column already belongs to another table or the memory limit
// refuses the storage.
func (t *Table) AddColumn(cols ...column.Column) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	rows := t.RowCount()
	seen := make(map[string]struct{}, len(cols))
	var bytes int64
	for i, c := range cols {
		if c == nil {
			return fmt.Errorf("%w: column %d is nil", ErrArgument, i)
		}
		name := c.Name()
		if _, ok := t.byName[name]; ok {
			return fmt.Errorf("%w: table %q already has a column %q", ErrArgument, t.name, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate column %q", ErrArgument, name)
		}
		seen[name] = struct{}{}

		if len(t.columns) == 0 && i == 0 {
			rows = c.Size()
		}
		if c.Size() != rows {
			return fmt.Errorf("%w: column %q has %d rows, table %q has %d",
				ErrArgument, name, c.Size(), t.name, rows)
		}
		if owner := c.Owner(); owner != nil && owner != t {
			return fmt.Errorf("%w: column %q belongs to another table", ErrArgument, name)
		}
		bytes += c.SizeInBytes()
	}

	if err := t.reserve(bytes); err != nil {
		return err
	}
	t.attach(cols...)
	return nil
}

// attach binds and indexes columns that are already validated and accounted.
func (t *Table) attach(cols ...column.Column) {
	for _, c := range cols {
		_ = c.Bind(t) // validated by the caller, or freshly created
		t.byName[c.Name()] = len(t.columns)
		t.columns = append(t.columns, c)
	}
}

// RemoveColumn removes the named column and releases it, so it can be added
// to another table.
func (t *Table) RemoveColumn(name string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}
	i, ok := t.byName[name]
	if !ok {
		return fmt.Errorf("%w: table %q has no column %q", ErrArgument, t.name, name)
	}
	c := t.columns[i]
	c.Unbind(t)
	t.release(c.SizeInBytes())

	t.columns = slices.Delete(t.columns, i, i+1)
	t.reindex()
	return nil
}

func (t *Table) reindex() {
	clear(t.byName)
	for i, c := range t.columns {
		t.byName[c.Name()] = i
	}
}

// EmptyCopy returns a table with the same name and schema and no rows.
func (t *Table) EmptyCopy() (*Table, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	out := t.derive(t.name)
	for _, c := range t.columns {
		out.attach(c.EmptyColumn())
	}
	return out, nil
}

// Copy returns a deep copy of the table. The copy never shares storage with
// t and counts against the same memory limit.
func (t *Table) Copy() (*Table, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	out := t.derive(t.name)
	if err := out.reserve(t.SizeInBytes()); err != nil {
		return nil, err
	}
	for _, c := range t.columns {
		out.attach(c.CloneColumn())
	}
	return out, nil
}

// SizeInBytes estimates the memory held by the table's values.
func (t *Table) SizeInBytes() int64 {
	var n int64
	for _, c := range t.columns {
		n += c.SizeInBytes()
	}
	return n
}

// RowWidth returns the estimated bytes per row.
func (t *Table) RowWidth() int64 {
	var n int64
	for _, c := range t.columns {
		n += c.RowWidth()
	}
	return n
}

// MemoryUsage reports the bytes reserved by this table and every table that
// shares its memory limit.
func (t *Table) MemoryUsage() int64 { return t.rc.MemoryUsage() }

func (t *Table) reserve(bytes int64) error {
	if err := t.rc.AcquireMemory(bytes); err != nil {
		return column.NewCapacityError(bytes, t.rc.MemoryLimit(), err)
	}
	if bytes > 0 {
		t.reserved += bytes
	}
	return nil
}

// release gives back up to bytes of the table's reservation.
func (t *Table) release(bytes int64) {
	bytes = min(bytes, t.reserved)
	t.rc.ReleaseMemory(bytes)
	t.reserved -= max(bytes, 0)
}

func (t *Table) checkOpen() error {
	if t.closed {
		return fmt.Errorf("%w: %q", ErrClosed, t.name)
	}
	return nil
}

// RowString renders row i with tab-separated cells. Missing cells are empty.
func (t *Table) RowString(i int) string {
	cells := make([]string, len(t.columns))
	for j, c := range t.columns {
		cells[j] = c.CellString(i)
	}
	return strings.Join(cells, "\t")
}

// Print renders the table name, the header and every row as aligned text.
func (t *Table) Print() string {
	var sb strings.Builder
	sb.WriteString(t.name)
	sb.WriteByte('\n')

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.ColumnNames(), "\t"))
	for i := range t.RowCount() {
		fmt.Fprintln(w, t.RowString(i))
	}
	_ = w.Flush() // strings.Builder never fails
	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return fmt.Sprintf("Table %s: %d rows x %d columns", t.name, t.RowCount(), t.ColumnCount())
}
