package tabula

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/tabula/column"
)

// SortKey names a column to sort on and its direction.
type SortKey struct {
	Column     string
	Descending bool
}

// Asc sorts on name in ascending order, missing values first.
func Asc(name string) SortKey { return SortKey{Column: name} }

// Desc sorts on name in descending order, missing values last.
func Desc(name string) SortKey { return SortKey{Column: name, Descending: true} }

// String renders the key the way SortOnNames reads it.
func (k SortKey) String() string {
	if k.Descending {
		return "-" + k.Column
	}
	return k.Column
}

// SortOn reorders the rows of every column by the given keys: the first key
// decides, ties fall through to the next, and rows that tie on every key keep
// their current order.
//
// Unknown columns fail with ErrArgument before any column is touched.
func (t *Table) SortOn(keys ...SortKey) error {
	start := time.Now()
	err := t.sortOn(keys)

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	t.opts.metricsCollector.RecordSort(t.RowCount(), len(keys), time.Since(start), err)
	t.opts.logger.LogSort(context.Background(), t.name, names, t.RowCount(), err)
	return err
}

// SortOnNames sorts on column names; a "-" prefix sorts that column in
// descending order and a "+" prefix is accepted for ascending.
func (t *Table) SortOnNames(names ...string) error {
	keys := make([]SortKey, len(names))
	for i, n := range names {
		switch {
		case strings.HasPrefix(n, "-"):
			keys[i] = Desc(n[1:])
		case strings.HasPrefix(n, "+"):
			keys[i] = Asc(n[1:])
		default:
			keys[i] = Asc(n)
		}
	}
	return t.SortOn(keys...)
}

func (t *Table) sortOn(keys []SortKey) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	cmps := make([]column.RowComparator, len(keys))
	for i, k := range keys {
		c, err := t.Column(k.Column)
		if err != nil {
			return err
		}
		cmps[i] = c.RowComparator()
		if k.Descending {
			cmps[i] = column.Reversed(cmps[i])
		}
	}
	n := t.RowCount()
	if len(keys) == 0 || n < 2 {
		return nil
	}

	// The permutation and the largest rebuilt column are transient.
	transient := int64(n) * 8
	var widest int64
	for _, c := range t.columns {
		widest = max(widest, c.SizeInBytes())
	}
	transient += widest
	if err := t.rc.AcquireMemory(transient); err != nil {
		return column.NewCapacityError(transient, t.rc.MemoryLimit(), err)
	}
	defer t.rc.ReleaseMemory(transient)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, column.Lexicographic(cmps...))

	for _, c := range t.columns {
		if err := c.Reorder(order); err != nil {
			// order is a permutation of [0, n), which every column accepts.
			return fmt.Errorf("reorder column %q: %w", c.Name(), err)
		}
	}
	return nil
}
