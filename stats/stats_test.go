package stats

import (
	"math"
	"testing"

	"github.com/hupe1980/tabula/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	c, err := column.FromValues("delta", []int16{5, -3, 0, 17, math.MinInt16, 5})
	require.NoError(t, err)

	d, err := Describe(c)
	require.NoError(t, err)

	assert.Equal(t, "delta", d.Column)
	assert.Equal(t, column.Int16, d.Type)
	assert.Equal(t, 6, d.Count)
	assert.Equal(t, 1, d.Missing)
	assert.Equal(t, 5, d.Unique)
	assert.Equal(t, -3.0, d.Min)
	assert.Equal(t, 17.0, d.Max)
	assert.Equal(t, 20.0, d.Range)
	assert.Equal(t, 24.0, d.Sum)
}

func TestDescribeLargeInt64Sum(t *testing.T) {
	c, err := column.FromValues("big", []int64{math.MaxInt64, 1})
	require.NoError(t, err)

	d, err := Describe(c)
	require.NoError(t, err)
	assert.Greater(t, d.Sum, 0.0)
	assert.InDelta(t, float64(math.MaxInt64), d.Sum, 1)
}

func TestDescribeNotApplicable(t *testing.T) {
	tests := []struct {
		name    string
		col     func(t *testing.T) column.Column
		wantMin bool
		wantSum bool
	}{
		{
			name: "category",
			col: func(t *testing.T) column.Column {
				c, err := column.FromValues("s", []string{"a", "b"})
				require.NoError(t, err)
				return c
			},
		},
		{
			name: "temporal",
			col: func(t *testing.T) column.Column {
				c, err := column.FromValues("t", []column.Timestamp{1000, 3000})
				require.NoError(t, err)
				return c
			},
			wantMin: true,
		},
		{
			name: "all missing",
			col: func(t *testing.T) column.Column {
				c, err := column.FromValues("f", []float64{math.NaN(), math.NaN()})
				require.NoError(t, err)
				return c
			},
		},
		{
			name: "boolean",
			col: func(t *testing.T) column.Column {
				c, err := column.FromValues("b", []column.Bool{column.True, column.False, column.True})
				require.NoError(t, err)
				return c
			},
			wantMin: true,
			wantSum: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Describe(tt.col(t))
			require.NoError(t, err)

			assert.Equal(t, tt.wantMin, !math.IsNaN(d.Min))
			assert.Equal(t, tt.wantMin, !math.IsNaN(d.Max))
			assert.Equal(t, tt.wantMin, !math.IsNaN(d.Range))
			assert.Equal(t, tt.wantSum, !math.IsNaN(d.Sum))
		})
	}
}

func TestDescribeNil(t *testing.T) {
	_, err := Describe(nil)
	assert.ErrorIs(t, err, column.ErrArgument)
}

func TestMeasures(t *testing.T) {
	c, err := column.FromValues("n", []int32{1, 2})
	require.NoError(t, err)
	d, err := Describe(c)
	require.NoError(t, err)

	m := d.Measures()
	require.Len(t, m, 7)
	assert.Equal(t, Measure{Name: "Count", Value: 2}, m[0])
	assert.Equal(t, Measure{Name: "Sum", Value: 3}, m[6])
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(math.NaN()))
	assert.Equal(t, "2.5", FormatValue(2.5))
	assert.Equal(t, "1000", FormatValue(1000))
}
