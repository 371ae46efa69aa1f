package column

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, Int8, TypeOf[int8]())
	assert.Equal(t, Int16, TypeOf[int16]())
	assert.Equal(t, Int32, TypeOf[int32]())
	assert.Equal(t, Int64, TypeOf[int64]())
	assert.Equal(t, Float32, TypeOf[float32]())
	assert.Equal(t, Float64, TypeOf[float64]())
	assert.Equal(t, Boolean, TypeOf[Bool]())
	assert.Equal(t, Category, TypeOf[string]())
	assert.Equal(t, Temporal, TypeOf[Timestamp]())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Int16", Int16.String())
	assert.Equal(t, "Temporal", Temporal.String())
	assert.Equal(t, "Type(42)", Type(42).String())

	assert.True(t, Int64.IsInteger())
	assert.False(t, Float32.IsInteger())
	assert.True(t, Boolean.IsNumeric())
	assert.False(t, Category.IsNumeric())
	assert.False(t, Temporal.IsNumeric())
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("float64")
	require.NoError(t, err)
	assert.Equal(t, Float64, typ)

	_, err = ParseType("decimal")
	assert.ErrorIs(t, err, ErrArgument)

	_, err = ParseType("Invalid")
	assert.ErrorIs(t, err, ErrArgument)
}

func TestMissingSentinels(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), Missing[int8]())
	assert.Equal(t, int16(math.MinInt16), Missing[int16]())
	assert.Equal(t, int32(math.MinInt32), Missing[int32]())
	assert.Equal(t, int64(math.MinInt64), Missing[int64]())
	assert.True(t, math.IsNaN(float64(Missing[float32]())))
	assert.True(t, math.IsNaN(Missing[float64]()))
	assert.Equal(t, MissingBool, Missing[Bool]())
	assert.Equal(t, "", Missing[string]())
	assert.Equal(t, MissingTimestamp, Missing[Timestamp]())

	assert.True(t, IsMissing(math.NaN()))
	assert.False(t, IsMissing(0.0))
	assert.True(t, IsMissing(int16(math.MinInt16)))
	assert.False(t, IsMissing(int16(math.MinInt16+1)))
	assert.False(t, IsMissing("x"))
}

func TestBool(t *testing.T) {
	assert.Equal(t, True, BoolOf(true))
	assert.Equal(t, False, BoolOf(false))
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "", MissingBool.String())
}

func TestTimestamp(t *testing.T) {
	tm := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	ts := TimestampOf(tm)

	assert.Equal(t, tm, ts.Time())
	assert.Equal(t, "2024-03-01T12:30:00Z", ts.String())
	assert.Equal(t, "", MissingTimestamp.String())
}

func TestFloatKeysCanonical(t *testing.T) {
	k := kindOf[float64]()

	assert.Equal(t, k.key(0), k.key(math.Copysign(0, -1)))
	assert.Equal(t, k.key(math.NaN()), k.key(-math.NaN()))
	assert.Equal(t, 1.5, k.fromKey(k.key(1.5)))
}
