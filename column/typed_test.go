package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := NewInt32("count")
	require.NoError(t, err)

	assert.Equal(t, "count", c.Name())
	assert.Equal(t, Int32, c.Type())
	assert.Equal(t, 0, c.Size())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "Int32 column: count", c.String())

	_, err = NewInt32("")
	assert.ErrorIs(t, err, ErrArgument)
}

func TestSetName(t *testing.T) {
	c, err := NewCategory("a")
	require.NoError(t, err)

	require.NoError(t, c.SetName("b"))
	assert.Equal(t, "b", c.Name())
	assert.ErrorIs(t, c.SetName(""), ErrArgument)
	assert.Equal(t, "b", c.Name())
}

func TestSetGet(t *testing.T) {
	c, err := FromValues("v", []int64{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, c.Set(1, 20))
	v, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), v)

	_, err = c.Get(3)
	var idxErr *IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 3, idxErr.Index)
	assert.Equal(t, 3, idxErr.Size)
	assert.ErrorIs(t, err, ErrArgument)

	assert.ErrorIs(t, c.Set(-1, 0), ErrArgument)
}

func TestAddMissing(t *testing.T) {
	c, err := NewFloat64("f")
	require.NoError(t, err)

	c.Add(1.5)
	c.AddMissing()
	c.Add(2.5)

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 1, c.CountMissing())
	assert.True(t, c.IsMissingAt(1))
	assert.False(t, c.IsMissingAt(0))
	assert.False(t, c.IsMissingAt(17))
}

func TestCopyIsIndependent(t *testing.T) {
	c, err := FromValues("v", []int16{1, 2, 3})
	require.NoError(t, err)

	cp := c.Copy()
	require.NoError(t, cp.Set(0, 99))
	cp.Add(4)

	assert.Equal(t, []int16{1, 2, 3}, c.ToSlice())
	assert.Equal(t, []int16{99, 2, 3, 4}, cp.ToSlice())
	assert.Equal(t, "v", cp.Name())

	empty := c.EmptyCopy()
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, Int16, empty.Type())
}

func TestAppend(t *testing.T) {
	a, err := FromValues("a", []int32{1, 2})
	require.NoError(t, err)
	b, err := FromValues("b", []int32{3})
	require.NoError(t, err)

	require.NoError(t, a.Append(b))
	assert.Equal(t, []int32{1, 2, 3}, a.ToSlice())
	assert.Equal(t, []int32{3}, b.ToSlice())
}

func TestAppendTypeMismatch(t *testing.T) {
	ints, err := FromValues("i", []int32{1, 2})
	require.NoError(t, err)
	floats, err := FromValues("f", []float64{1.5})
	require.NoError(t, err)

	err = ints.Append(floats)

	var tm *TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, Int32, tm.Expected)
	assert.Equal(t, Float64, tm.Actual)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, []int32{1, 2}, ints.ToSlice())
	assert.Equal(t, []float64{1.5}, floats.ToSlice())

	assert.ErrorIs(t, ints.Append(nil), ErrArgument)
}

func TestFirstElement(t *testing.T) {
	c, err := NewInt8("c")
	require.NoError(t, err)
	assert.Equal(t, Missing[int8](), c.FirstElement())

	c.Add(7)
	assert.Equal(t, int8(7), c.FirstElement())
}

func TestPrint(t *testing.T) {
	c, err := FromValues("name", []string{"x", "", "y"})
	require.NoError(t, err)

	assert.Equal(t, "Column: name\nx\n\ny\n", c.Print())
	assert.Equal(t, "x", c.CellString(0))
	assert.Equal(t, "", c.CellString(1))
	assert.Equal(t, "", c.CellString(5))
}

func TestValuesIterator(t *testing.T) {
	c, err := FromValues("v", []int64{10, 20, 30})
	require.NoError(t, err)

	var rows []int
	var sum int64
	for i, v := range c.Values() {
		rows = append(rows, i)
		sum += v
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, rows)
	assert.Equal(t, int64(30), sum)
}

func TestClearAndGrow(t *testing.T) {
	c, err := FromValues("v", []float32{1, 2})
	require.NoError(t, err)

	c.Clear()
	assert.True(t, c.IsEmpty())
	c.Grow(1000)
	c.Add(3)
	assert.Equal(t, []float32{3}, c.ToSlice())
}

func TestSizeInBytes(t *testing.T) {
	c, err := FromValues("v", []int32{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, int64(4), c.RowWidth())
	assert.Equal(t, int64(12), c.SizeInBytes())
}

func TestBind(t *testing.T) {
	c, err := NewInt8("c")
	require.NoError(t, err)
	owner, other := new(int), new(int)

	require.NoError(t, c.Bind(owner))
	require.NoError(t, c.Bind(owner))
	assert.ErrorIs(t, c.Bind(other), ErrArgument)

	c.Unbind(other)
	assert.Equal(t, owner, c.Owner())

	c.Unbind(owner)
	assert.Nil(t, c.Owner())
	require.NoError(t, c.Bind(other))
}

func TestNewOfTypeAndAs(t *testing.T) {
	for _, typ := range []Type{Int8, Int16, Int32, Int64, Float32, Float64, Boolean, Category, Temporal} {
		c, err := NewOfType(typ, "c")
		require.NoError(t, err)
		assert.Equal(t, typ, c.Type())
	}

	_, err := NewOfType(Invalid, "c")
	assert.ErrorIs(t, err, ErrArgument)

	c, err := NewOfType(Int16, "c")
	require.NoError(t, err)
	typed, err := As[int16](c)
	require.NoError(t, err)
	assert.Equal(t, "c", typed.Name())

	_, err = As[int32](c)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = As[int32](nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
