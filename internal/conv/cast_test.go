//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := RowToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := RowToUint32(123)
		assert.NoError(t, err)
		assert.Equal(t, uint32(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := RowToUint32(-1)
		assert.Error(t, err)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := RowToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := RowToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUint32ToRow(t *testing.T) {
	assert.Equal(t, 0, Uint32ToRow(0))
	assert.Equal(t, math.MaxUint32, Uint32ToRow(math.MaxUint32))
}

func TestUint64ToInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Uint64ToInt(42)
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.Error(t, err)
	})

	t.Run("must panics on overflow", func(t *testing.T) {
		assert.Panics(t, func() { MustUint64ToInt(math.MaxUint64) })
		assert.Equal(t, 7, MustUint64ToInt(7))
	})
}
