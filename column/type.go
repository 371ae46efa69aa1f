package column

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Type identifies the primitive kind stored in a column.
type Type uint8

const (
	// Invalid is the zero Type.
	Invalid Type = iota
	// Int8 stores int8 values.
	Int8
	// Int16 stores int16 values.
	Int16
	// Int32 stores int32 values.
	Int32
	// Int64 stores int64 values.
	Int64
	// Float32 stores float32 values.
	Float32
	// Float64 stores float64 values.
	Float64
	// Boolean stores Bool values.
	Boolean
	// Category stores string values.
	Category
	// Temporal stores Timestamp values.
	Temporal
)

var typeNames = [...]string{
	Invalid:  "Invalid",
	Int8:     "Int8",
	Int16:    "Int16",
	Int32:    "Int32",
	Int64:    "Int64",
	Float32:  "Float32",
	Float64:  "Float64",
	Boolean:  "Boolean",
	Category: "Category",
	Temporal: "Temporal",
}

// String returns the name of the type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// IsInteger reports whether t is one of the signed integer kinds.
func (t Type) IsInteger() bool {
	return t >= Int8 && t <= Int64
}

// IsNumeric reports whether values of t take part in arithmetic reductions.
func (t Type) IsNumeric() bool {
	return t >= Int8 && t <= Boolean
}

// ParseType resolves a type by its (case-insensitive) name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if t != int(Invalid) && strings.EqualFold(n, name) {
			return Type(t), nil
		}
	}
	return Invalid, fmt.Errorf("%w: unknown column type %q", ErrArgument, name)
}

// Bool is the value type of Boolean columns. A plain bool has no room for
// a missing value, so booleans are stored as a byte.
type Bool int8

const (
	// False is the Bool false value.
	False Bool = 0
	// True is the Bool true value.
	True Bool = 1
	// MissingBool is the sentinel of Boolean columns.
	MissingBool Bool = math.MinInt8
)

// BoolOf converts a bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// String implements fmt.Stringer.
func (b Bool) String() string {
	switch b {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return ""
	}
}

// Timestamp is the value type of Temporal columns: milliseconds since the
// Unix epoch, UTC.
type Timestamp int64

// MissingTimestamp is the sentinel of Temporal columns.
const MissingTimestamp Timestamp = math.MinInt64

// TimestampOf converts a time.Time, truncating to milliseconds.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time converts the timestamp back to a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

// String implements fmt.Stringer.
func (ts Timestamp) String() string {
	if ts == MissingTimestamp {
		return ""
	}
	return ts.Time().Format(time.RFC3339Nano)
}

// Value is the closed set of Go types a column can store. Every Go type maps
// to exactly one column Type.
type Value interface {
	int8 | int16 | int32 | int64 | float32 | float64 | Bool | string | Timestamp
}

// Integer is the subset of Value with integer arithmetic.
type Integer interface {
	int8 | int16 | int32 | int64
}

// Number is the subset of Value with signed arithmetic.
type Number interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

var errReserved = errors.New("value is reserved for missing data")

// kind is the per-type policy: sentinel, parse and format rules, width and
// the integer key used to deduplicate values.
type kind[T Value] struct {
	typ      Type
	missing  T
	floating bool
	width    int64
	parse    func(token string, o *options) (T, error)
	format   func(v T) string
	toFloat  func(v T) float64
	// toInt is set for kinds whose sum is exact in int64.
	toInt func(v T) int64
	// key/fromKey encode values for Unique; nil for Category.
	key     func(v T) uint64
	fromKey func(k uint64) T
	wide    bool
}

func (k *kind[T]) isMissing(v T) bool {
	if k.floating {
		return v != v
	}
	return v == k.missing
}

func stripGrouping(token string) string {
	if strings.IndexByte(token, ',') < 0 {
		return token
	}
	return strings.ReplaceAll(token, ",", "")
}

func parseSigned(bits int, sentinel int64) func(string) (int64, error) {
	return func(token string) (int64, error) {
		v, err := strconv.ParseInt(stripGrouping(token), 10, bits)
		if err != nil {
			return 0, err
		}
		if v == sentinel {
			return 0, errReserved
		}
		return v, nil
	}
}

var (
	parseInt8  = parseSigned(8, math.MinInt8)
	parseInt16 = parseSigned(16, math.MinInt16)
	parseInt32 = parseSigned(32, math.MinInt32)
	parseInt64 = parseSigned(64, math.MinInt64)
)

func formatInt[T Integer](v T) string { return strconv.FormatInt(int64(v), 10) }

var int8Kind = &kind[int8]{
	typ: Int8, missing: math.MinInt8, width: 1,
	parse: func(s string, _ *options) (int8, error) {
		v, err := parseInt8(s)
		return int8(v), err
	},
	format:  formatInt[int8],
	toFloat: func(v int8) float64 { return float64(v) },
	toInt:   func(v int8) int64 { return int64(v) },
	key:     func(v int8) uint64 { return uint64(uint8(v)) },
	fromKey: func(k uint64) int8 { return int8(uint8(k)) },
}

var int16Kind = &kind[int16]{
	typ: Int16, missing: math.MinInt16, width: 2,
	parse: func(s string, _ *options) (int16, error) {
		v, err := parseInt16(s)
		return int16(v), err
	},
	format:  formatInt[int16],
	toFloat: func(v int16) float64 { return float64(v) },
	toInt:   func(v int16) int64 { return int64(v) },
	key:     func(v int16) uint64 { return uint64(uint16(v)) },
	fromKey: func(k uint64) int16 { return int16(uint16(k)) },
}

var int32Kind = &kind[int32]{
	typ: Int32, missing: math.MinInt32, width: 4,
	parse: func(s string, _ *options) (int32, error) {
		v, err := parseInt32(s)
		return int32(v), err
	},
	format:  formatInt[int32],
	toFloat: func(v int32) float64 { return float64(v) },
	toInt:   func(v int32) int64 { return int64(v) },
	key:     func(v int32) uint64 { return uint64(uint32(v)) },
	fromKey: func(k uint64) int32 { return int32(uint32(k)) },
}

var int64Kind = &kind[int64]{
	typ: Int64, missing: math.MinInt64, width: 8,
	parse:   func(s string, _ *options) (int64, error) { return parseInt64(s) },
	format:  formatInt[int64],
	toFloat: func(v int64) float64 { return float64(v) },
	toInt:   func(v int64) int64 { return v },
	key:     func(v int64) uint64 { return uint64(v) },
	fromKey: func(k uint64) int64 { return int64(k) },
	wide:    true,
}

// canonicalNaN32 and canonicalNaN64 give every missing float one key.
var (
	canonicalNaN32 = math.Float32bits(float32(math.NaN()))
	canonicalNaN64 = math.Float64bits(math.NaN())
)

var float32Kind = &kind[float32]{
	typ: Float32, missing: float32(math.NaN()), floating: true, width: 4,
	parse: func(s string, _ *options) (float32, error) {
		v, err := strconv.ParseFloat(stripGrouping(s), 32)
		return float32(v), err
	},
	format:  func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) },
	toFloat: func(v float32) float64 { return float64(v) },
	key: func(v float32) uint64 {
		switch {
		case v != v:
			return uint64(canonicalNaN32)
		case v == 0:
			return 0
		}
		return uint64(math.Float32bits(v))
	},
	fromKey: func(k uint64) float32 { return math.Float32frombits(uint32(k)) },
}

var float64Kind = &kind[float64]{
	typ: Float64, missing: math.NaN(), floating: true, width: 8,
	parse:   func(s string, _ *options) (float64, error) { return strconv.ParseFloat(stripGrouping(s), 64) },
	format:  func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	toFloat: func(v float64) float64 { return v },
	key: func(v float64) uint64 {
		switch {
		case v != v:
			return canonicalNaN64
		case v == 0:
			return 0
		}
		return math.Float64bits(v)
	},
	fromKey: math.Float64frombits,
	wide:    true,
}

var boolKind = &kind[Bool]{
	typ: Boolean, missing: MissingBool, width: 1,
	parse: func(s string, _ *options) (Bool, error) {
		switch strings.ToLower(s) {
		case "true", "t", "yes", "y", "1":
			return True, nil
		case "false", "f", "no", "n", "0":
			return False, nil
		}
		return MissingBool, errors.New("invalid boolean")
	},
	format:  Bool.String,
	toFloat: func(v Bool) float64 { return float64(v) },
	toInt:   func(v Bool) int64 { return int64(v) },
	key:     func(v Bool) uint64 { return uint64(uint8(v)) },
	fromKey: func(k uint64) Bool { return Bool(int8(uint8(k))) },
}

// stringWidth approximates the per-value cost of a string header.
const stringWidth = 16

var categoryKind = &kind[string]{
	typ: Category, missing: "", width: stringWidth,
	parse:  func(s string, _ *options) (string, error) { return s, nil },
	format: func(v string) string { return v },
}

var temporalKind = &kind[Timestamp]{
	typ: Temporal, missing: MissingTimestamp, width: 8,
	parse: func(s string, o *options) (Timestamp, error) {
		var firstErr error
		for _, layout := range o.timeLayouts {
			t, err := time.Parse(layout, s)
			if err == nil {
				ts := TimestampOf(t)
				if ts == MissingTimestamp {
					return MissingTimestamp, errReserved
				}
				return ts, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		if firstErr == nil {
			firstErr = errors.New("no time layouts configured")
		}
		return MissingTimestamp, firstErr
	},
	format:  Timestamp.String,
	toFloat: func(v Timestamp) float64 { return float64(v) },
	key:     func(v Timestamp) uint64 { return uint64(v) },
	fromKey: func(k uint64) Timestamp { return Timestamp(k) },
	wide:    true,
}

// kindOf returns the policy of T. The type switch is total over Value.
func kindOf[T Value]() *kind[T] {
	var zero T
	var k any
	switch any(zero).(type) {
	case int8:
		k = int8Kind
	case int16:
		k = int16Kind
	case int32:
		k = int32Kind
	case int64:
		k = int64Kind
	case float32:
		k = float32Kind
	case float64:
		k = float64Kind
	case Bool:
		k = boolKind
	case string:
		k = categoryKind
	case Timestamp:
		k = temporalKind
	}
	return k.(*kind[T])
}

// TypeOf returns the column Type that stores T.
func TypeOf[T Value]() Type {
	return kindOf[T]().typ
}

// Missing returns the sentinel that represents a missing T.
func Missing[T Value]() T {
	return kindOf[T]().missing
}

// IsMissing reports whether v is the sentinel of its type.
func IsMissing[T Value](v T) bool {
	return kindOf[T]().isMissing(v)
}
