package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Int64s returns n values uniformly distributed in [lo, hi).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Int64s(n int, lo, hi int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, n)
	if hi <= lo {
		for i := range out {
			out[i] = lo
		}
		return out
	}
	for i := range n {
		out[i] = lo + r.rand.Int63n(hi-lo)
	}
	return out
}

// Float64s returns n values uniformly distributed in [lo, hi).
func (r *RNG) Float64s(n int, lo, hi float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range n {
		out[i] = lo + r.rand.Float64()*(hi-lo)
	}
	return out
}

// Words returns n strings drawn from a vocabulary of size distinct words.
func (r *RNG) Words(n, size int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	vocab := make([]string, max(size, 1))
	for i := range vocab {
		vocab[i] = word(i)
	}
	out := make([]string, n)
	for i := range n {
		out[i] = vocab[r.rand.Intn(len(vocab))]
	}
	return out
}

// word spells i in base 26 ("a", "b", ..., "ba", ...).
func word(i int) string {
	b := []byte{byte('a' + i%26)}
	for i /= 26; i > 0; i /= 26 {
		b = append([]byte{byte('a' + i%26)}, b...)
	}
	return string(b)
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// ZipfBuckets generates n bucket assignments with Zipfian distribution.
// Heavily skewed keys produce many ties, which sorting tests rely on.
func (r *RNG) ZipfBuckets(n, bucketCount int, s float64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	buckets := make([]int64, n)
	for i := range n {
		buckets[i] = int64(r.zipfLocked(bucketCount, s))
	}

	return buckets
}

// PresenceMask reports for each of n rows whether it holds a real value.
// missingRate is the probability that a row is missing (0.3 = 30% missing).
func (r *RNG) PresenceMask(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= missingRate
	}

	return present
}
