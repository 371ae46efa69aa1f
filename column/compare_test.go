package column

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareMissingIsMinimum(t *testing.T) {
	ints, err := NewInt32("i")
	require.NoError(t, err)
	assert.Negative(t, ints.Compare(math.MinInt32, math.MinInt32+1))
	assert.Zero(t, ints.Compare(math.MinInt32, math.MinInt32))

	floats, err := NewFloat64("f")
	require.NoError(t, err)
	assert.Negative(t, floats.Compare(math.NaN(), math.Inf(-1)))
	assert.Zero(t, floats.Compare(math.NaN(), math.NaN()))

	cats, err := NewCategory("c")
	require.NoError(t, err)
	assert.Negative(t, cats.Compare("", "a"))

	bools, err := NewBoolean("b")
	require.NoError(t, err)
	assert.Negative(t, bools.Compare(MissingBool, False))
	assert.Negative(t, bools.Compare(False, True))
}

func TestRowComparator(t *testing.T) {
	c, err := FromValues("v", []int64{5, 1, 5})
	require.NoError(t, err)
	cmp := c.RowComparator()

	assert.Positive(t, cmp(0, 1))
	assert.Negative(t, cmp(1, 0))
	assert.Zero(t, cmp(0, 2))

	rev := Reversed(cmp)
	assert.Negative(t, rev(0, 1))
}

func TestLexicographic(t *testing.T) {
	a, err := FromValues("a", []string{"x", "y", "x", "x"})
	require.NoError(t, err)
	b, err := FromValues("b", []int32{2, 1, 1, 2})
	require.NoError(t, err)

	order := []int{0, 1, 2, 3}
	cmp := Lexicographic(a.RowComparator(), Reversed(b.RowComparator()))
	slices.SortStableFunc(order, cmp)

	assert.Equal(t, []int{0, 3, 2, 1}, order)
	assert.Zero(t, Lexicographic()(0, 1))
}
