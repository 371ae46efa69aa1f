package column

import (
	"testing"

	"github.com/hupe1980/tabula/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	c, err := FromValues("v", []string{"a", "b", "c", "d"})
	require.NoError(t, err)

	s, err := c.Select(bitmap.Of(3, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, s.ToSlice())
	assert.Equal(t, "v", s.Name())

	s.Add("z")
	assert.Equal(t, 4, c.Size())

	empty, err := c.Select(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = c.Select(bitmap.Of(4))
	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 4, idxErr.Index)
}

func TestSelectColumn(t *testing.T) {
	c, err := FromValues("v", []int16{1, 2, 3})
	require.NoError(t, err)

	var col Column = c
	s, err := col.SelectColumn(IsPositive(c))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, Int16, s.Type())

	p, err := col.PermuteColumn([]int{2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, "3", p.CellString(0))

	_, err = col.SelectColumn(bitmap.Range(0, 5))
	assert.ErrorIs(t, err, ErrArgument)
}
