package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Int64s(100, -5, 5)

	assert.Len(t, v, 100)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, int64(-5))
		assert.Less(t, x, int64(5))
	}

	assert.Equal(t, []int64{3, 3}, rng.Int64s(2, 3, 3))
}

func TestFloat64s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Float64s(50, -1, 1)

	assert.Len(t, v, 50)
	for _, x := range v {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}
}

func TestWords(t *testing.T) {
	rng := NewRNG(4711)

	seen := map[string]bool{}
	for _, w := range rng.Words(500, 3) {
		seen[w] = true
	}
	assert.LessOrEqual(t, len(seen), 3)
	assert.Equal(t, "a", word(0))
	assert.Equal(t, "ba", word(26))
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Int64s(10, 0, 1000)
	rng.Reset()
	assert.Equal(t, first, rng.Int64s(10, 0, 1000))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestZipfBuckets(t *testing.T) {
	rng := NewRNG(4711)

	buckets := rng.ZipfBuckets(1000, 10, 1.5)

	counts := make([]int, 10)
	for _, b := range buckets {
		assert.GreaterOrEqual(t, b, int64(0))
		assert.Less(t, b, int64(10))
		counts[b]++
	}
	assert.Greater(t, counts[0], counts[9], "bucket 0 should dominate")
	assert.Equal(t, 0, rng.Zipf(1, 1.0))
}

func TestPresenceMask(t *testing.T) {
	rng := NewRNG(4711)

	present := rng.PresenceMask(10000, 0.3)

	missing := 0
	for _, p := range present {
		if !p {
			missing++
		}
	}
	assert.InDelta(t, 3000, missing, 300)
}
