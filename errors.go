package tabula

import (
	"errors"

	"github.com/hupe1980/tabula/column"
)

// Error kinds. Every error returned by tabula matches exactly one of them
// with errors.Is.
var (
	// ErrArgument is returned for empty or duplicate names, unknown columns,
	// out-of-range rows and mismatched column lengths.
	ErrArgument = column.ErrArgument

	// ErrTypeMismatch is returned when columns of different types are combined.
	ErrTypeMismatch = column.ErrTypeMismatch

	// ErrConversion is returned when a cell token cannot be parsed.
	ErrConversion = column.ErrConversion

	// ErrCapacity is returned when the memory limit refuses to grow a table.
	ErrCapacity = column.ErrCapacity

	// ErrNoData is returned by reductions over a column without real values.
	ErrNoData = column.ErrNoData

	// ErrClosed is returned by operations on a closed table.
	ErrClosed = errors.New("table is closed")
)

type (
	// ConversionError reports a cell token that could not be parsed.
	ConversionError = column.ConversionError

	// TypeMismatchError reports an operation across different column types.
	TypeMismatchError = column.TypeMismatchError

	// IndexError reports a row outside a column.
	IndexError = column.IndexError

	// CapacityError reports growth refused by the memory limit.
	CapacityError = column.CapacityError
)
