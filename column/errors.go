package column

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is returned for invalid arguments: empty or duplicate names,
	// out-of-range indexes and mismatched column lengths.
	ErrArgument = errors.New("invalid argument")

	// ErrTypeMismatch is returned when columns of different types are combined.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrConversion is returned when a cell token cannot be parsed.
	ErrConversion = errors.New("conversion failed")

	// ErrCapacity is returned when a memory budget refuses to grow storage.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrNoData is returned by reductions over a column without real values.
	ErrNoData = errors.New("no data")
)

// ConversionError reports a cell token that could not be converted to the
// column's type. It matches ErrConversion with errors.Is.
//
// The original parse error (if any) can be accessed via errors.Unwrap.
type ConversionError struct {
	Column string
	Token  string
	Type   Type
	cause  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("column %q: cannot convert %q to %s: %v", e.Column, e.Token, e.Type, e.cause)
}

func (e *ConversionError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrConversion) hold.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// TypeMismatchError reports an operation across columns of different types.
// It matches ErrTypeMismatch with errors.Is.
type TypeMismatchError struct {
	Op       string
	Expected Type
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: type mismatch: expected %s, got %s", e.Op, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrTypeMismatch) hold.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// IndexError reports a row index outside [0, Size). It matches ErrArgument
// with errors.Is.
type IndexError struct {
	Column string
	Index  int
	Size   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("column %q: index %d out of range [0, %d)", e.Column, e.Index, e.Size)
}

// Is makes errors.Is(err, ErrArgument) hold.
func (e *IndexError) Is(target error) bool { return target == ErrArgument }

// CapacityError reports storage growth refused by a memory budget. It matches
// ErrCapacity with errors.Is.
//
// The underlying budget error can be accessed via errors.Unwrap.
type CapacityError struct {
	Requested int64
	Limit     int64
	cause     error
}

// NewCapacityError wraps a budget failure.
func NewCapacityError(requested, limit int64, cause error) *CapacityError {
	return &CapacityError{Requested: requested, Limit: limit, cause: cause}
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d bytes, limit %d bytes", e.Requested, e.Limit)
}

func (e *CapacityError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrCapacity) hold.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }
