package tabula

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/tabula/column"
	"github.com/hupe1980/tabula/internal/resource"
	"golang.org/x/sync/errgroup"
)

// RecordReader yields records of cell tokens, one per call, and io.EOF at
// the end. *csv.Reader satisfies it.
type RecordReader interface {
	Read() ([]string, error)
}

// ColumnSpec declares one column of the records a Loader reads.
type ColumnSpec struct {
	Name string
	Type column.Type
}

// Loader builds tables from records. Every field is converted by its
// column's AddCell rules.
//
// Records are read in batches. Each batch waits for the ingest rate limit,
// reserves its storage against the memory limit and is then converted with
// one worker per column.
type Loader struct {
	schema []ColumnSpec
	opts   options
	rc     *resource.Controller
}

// NewLoader creates a loader for records with the given schema.
func NewLoader(schema []ColumnSpec, optFns ...Option) (*Loader, error) {
	if len(schema) == 0 {
		return nil, fmt.Errorf("%w: schema has no columns", ErrArgument)
	}
	seen := make(map[string]struct{}, len(schema))
	for i, s := range schema {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrArgument, i)
		}
		if _, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrArgument, s.Name)
		}
		seen[s.Name] = struct{}{}
		if _, err := column.NewOfType(s.Type, s.Name); err != nil {
			return nil, err
		}
	}

	o := applyOptions(optFns)
	return &Loader{
		schema: append([]ColumnSpec(nil), schema...),
		opts:   o,
		rc:     resource.NewController(o.limits),
	}, nil
}

// Load reads r to the end and returns the records as a table. Tables loaded
// by one Loader share its memory limit.
//
// A record with the wrong number of fields fails with ErrArgument and a
// field that cannot be converted with a *ConversionError; both name the
// record (1-based, header included). Loading is all or nothing: on any
// error, including cancellation of ctx, no table is returned and its
// reservation is released.
func (l *Loader) Load(ctx context.Context, name string, r RecordReader) (*Table, error) {
	start := time.Now()
	t, rows, err := l.load(ctx, name, r)

	l.opts.metricsCollector.RecordLoad(rows, time.Since(start), err)
	l.opts.logger.LogLoad(ctx, name, rows, err)
	return t, err
}

func (l *Loader) load(ctx context.Context, name string, r RecordReader) (*Table, int, error) {
	if name == "" {
		return nil, 0, fmt.Errorf("%w: table name must not be empty", ErrArgument)
	}
	if r == nil {
		return nil, 0, fmt.Errorf("%w: nil record reader", ErrArgument)
	}

	cols := make([]column.Column, len(l.schema))
	for i, s := range l.schema {
		c, err := column.NewOfType(s.Type, s.Name, l.opts.columnOptions...)
		if err != nil {
			return nil, 0, err
		}
		cols[i] = c
	}

	t := newTable(name, l.opts, l.rc)
	fail := func(rows int, err error) (*Table, int, error) {
		t.release(t.reserved)
		return nil, rows, err
	}

	var rowWidth int64
	for _, c := range cols {
		rowWidth += c.RowWidth()
	}

	record := 0
	if l.opts.headerRow {
		if _, err := l.read(r, &record); err != nil {
			if errors.Is(err, io.EOF) {
				t.attach(cols...)
				return t, 0, nil
			}
			return fail(0, err)
		}
	}

	rows := 0
	batch := make([][]string, 0, l.opts.batchSize)
	for done := false; !done; {
		if err := ctx.Err(); err != nil {
			return fail(rows, err)
		}

		batch = batch[:0]
		first := record + 1
		for len(batch) < l.opts.batchSize {
			rec, err := l.read(r, &record)
			if errors.Is(err, io.EOF) {
				done = true
				break
			}
			if err != nil {
				return fail(rows, err)
			}
			batch = append(batch, rec)
		}
		if len(batch) == 0 {
			break
		}

		if err := l.rc.WaitIngest(ctx, len(batch)); err != nil {
			return fail(rows, err)
		}
		if err := t.reserve(int64(len(batch)) * rowWidth); err != nil {
			return fail(rows, err)
		}
		if err := l.convert(ctx, cols, batch, first); err != nil {
			return fail(rows, err)
		}
		rows += len(batch)
	}

	t.attach(cols...)
	return t, rows, nil
}

// read returns the next record and checks its width. record counts the
// records read so far.
func (l *Loader) read(r RecordReader, record *int) ([]string, error) {
	rec, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("record %d: %w", *record+1, err)
	}
	*record++
	if len(rec) != len(l.schema) {
		return nil, fmt.Errorf("%w: record %d has %d fields, want %d",
			ErrArgument, *record, len(rec), len(l.schema))
	}
	return rec, nil
}

// convert appends the batch to the columns, one worker per column. Columns
// are independent, so they can be filled concurrently.
func (l *Loader) convert(ctx context.Context, cols []column.Column, batch [][]string, first int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.rc.MaxWorkers())
	for j, c := range cols {
		g.Go(func() error {
			if err := l.rc.AcquireWorker(ctx); err != nil {
				return err
			}
			defer l.rc.ReleaseWorker()

			for i, rec := range batch {
				if err := c.AddCell(rec[j]); err != nil {
					return fmt.Errorf("record %d: %w", first+i, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
