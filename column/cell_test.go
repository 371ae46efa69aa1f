package column

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCellMissingTokensAndGrouping(t *testing.T) {
	c, err := NewInt32("n")
	require.NoError(t, err)

	require.NoError(t, c.AddCell("NA"))
	require.NoError(t, c.AddCell(""))
	require.NoError(t, c.AddCell("1,024"))

	assert.Equal(t, []int32{math.MinInt32, math.MinInt32, 1024}, c.ToSlice())
	assert.Equal(t, 2, c.CountMissing())
}

func TestAddCellRoundTrip(t *testing.T) {
	c, err := NewInt64("n")
	require.NoError(t, err)

	for _, v := range []int64{0, -1, 42, math.MaxInt64, math.MinInt64 + 1} {
		require.NoError(t, c.AddCell(strconv.FormatInt(v, 10)))
	}
	c.AddMissing()

	for i := range c.Size() {
		d, err := NewInt64("d")
		require.NoError(t, err)
		require.NoError(t, d.AddCell(c.CellString(i)))
		want, _ := c.Get(i)
		got, _ := d.Get(0)
		assert.Equal(t, want, got)
	}
}

func TestAddCellConversionError(t *testing.T) {
	c, err := NewInt16("delta")
	require.NoError(t, err)
	c.Add(1)

	err = c.AddCell("abc")

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "delta", convErr.Column)
	assert.Equal(t, "abc", convErr.Token)
	assert.Equal(t, Int16, convErr.Type)
	assert.ErrorIs(t, err, ErrConversion)
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Equal(t, []int16{1}, c.ToSlice())
}

func TestAddCellOutOfRange(t *testing.T) {
	c, err := NewInt8("small")
	require.NoError(t, err)

	assert.ErrorIs(t, c.AddCell("128"), ErrConversion)
	assert.ErrorIs(t, c.AddCell("-129"), ErrConversion)
	require.NoError(t, c.AddCell("-127"))
}

func TestAddCellRejectsSentinel(t *testing.T) {
	c, err := NewInt16("n")
	require.NoError(t, err)

	err = c.AddCell("-32768")

	assert.ErrorIs(t, err, ErrConversion)
	assert.ErrorIs(t, err, errReserved)
	assert.True(t, c.IsEmpty())
}

func TestAddCellFloat(t *testing.T) {
	c, err := NewFloat64("f")
	require.NoError(t, err)

	require.NoError(t, c.AddCell("1,234.5"))
	require.NoError(t, c.AddCell("NaN"))
	require.NoError(t, c.AddCell("-0.25"))

	assert.Equal(t, 1234.5, c.ToSlice()[0])
	assert.True(t, c.IsMissingAt(1))
	assert.Equal(t, -0.25, c.ToSlice()[2])
	assert.Equal(t, "1234.5", c.CellString(0))
}

func TestAddCellCategoryKeepsCommas(t *testing.T) {
	c, err := NewCategory("city")
	require.NoError(t, err)

	require.NoError(t, c.AddCell("Paris, France"))
	require.NoError(t, c.AddCell("N/A"))

	assert.Equal(t, []string{"Paris, France", ""}, c.ToSlice())
	assert.Equal(t, 1, c.CountMissing())
}

func TestAddCellBoolean(t *testing.T) {
	c, err := NewBoolean("flag")
	require.NoError(t, err)

	for _, tok := range []string{"true", "F", "yes", "0", "null"} {
		require.NoError(t, c.AddCell(tok))
	}
	assert.Equal(t, []Bool{True, False, True, False, MissingBool}, c.ToSlice())

	assert.ErrorIs(t, c.AddCell("maybe"), ErrConversion)
}

func TestAddCellTemporal(t *testing.T) {
	c, err := NewTemporal("at")
	require.NoError(t, err)

	require.NoError(t, c.AddCell("2024-03-01"))
	require.NoError(t, c.AddCell("2024-03-01T10:00:00Z"))
	require.NoError(t, c.AddCell("-"))

	want := TimestampOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, want, c.ToSlice()[0])
	assert.Equal(t, "2024-03-01T10:00:00Z", c.CellString(1))
	assert.True(t, c.IsMissingAt(2))

	assert.ErrorIs(t, c.AddCell("yesterday"), ErrConversion)
}

func TestCustomTimeLayouts(t *testing.T) {
	c, err := NewTemporal("at", WithTimeLayouts("02.01.2006"))
	require.NoError(t, err)

	require.NoError(t, c.AddCell("31.12.2023"))
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), c.ToSlice()[0].Time())
	assert.ErrorIs(t, c.AddCell("2023-12-31"), ErrConversion)
}

func TestCustomMissingTokens(t *testing.T) {
	c, err := NewInt32("n", WithMissingTokens("?"))
	require.NoError(t, err)

	require.NoError(t, c.AddCell("?"))
	require.NoError(t, c.AddCell(""))
	assert.Equal(t, 2, c.CountMissing())

	assert.ErrorIs(t, c.AddCell("NA"), ErrConversion)
}

func TestSetCell(t *testing.T) {
	c, err := FromValues("n", []int32{1, 2})
	require.NoError(t, err)

	require.NoError(t, c.SetCell(0, "NA"))
	assert.True(t, c.IsMissingAt(0))

	assert.ErrorIs(t, c.SetCell(2, "5"), ErrArgument)
	assert.ErrorIs(t, c.SetCell(1, "x"), ErrConversion)
	assert.Equal(t, int32(2), c.ToSlice()[1])
}
