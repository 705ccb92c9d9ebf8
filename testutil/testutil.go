package testutil

import (
	"maps"
	"math/rand"
	"slices"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Ints returns count uniformly distributed values in the closed range
// [minVal, maxVal].
func (r *RNG) Ints(count, minVal, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal + 1
	out := make([]int, count)
	for i := range out {
		out[i] = minVal + r.rand.Intn(span)
	}
	return out
}

// FillInts fills dst with values in [minVal, maxVal].
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillInts(dst []int, minVal, maxVal int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal + 1
	for i := range dst {
		dst[i] = minVal + r.rand.Intn(span)
	}
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// ZipfInts returns count values in [0, imax] following a Zipf distribution
// with skew s (> 1). Small values are drawn far more often than large ones,
// which produces many repeated keys.
func (r *RNG) ZipfInts(count int, s float64, imax uint64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	z := rand.NewZipf(r.rand, s, 1, imax)
	out := make([]int, count)
	for i := range out {
		out[i] = int(z.Uint64()) // nolint gosec
	}
	return out
}

// Sequential returns the keys 0..count-1.
func Sequential(count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = i
	}
	return out
}

// IsStrictlyAscending reports whether every element is greater than its
// predecessor.
func IsStrictlyAscending(s []int) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// Oracle is a reference model for sorted maps: a plain Go map with
// last-writer-wins semantics on both insert paths.
type Oracle struct {
	m map[int]int
}

// NewOracle creates an empty Oracle.
func NewOracle() *Oracle {
	return &Oracle{m: make(map[int]int)}
}

// Insert stores value for key, replacing any earlier value.
func (o *Oracle) Insert(key, value int) {
	o.m[key] = value
}

// BulkInsert applies the pairs in order.
func (o *Oracle) BulkInsert(keys, values []int) {
	for i, k := range keys {
		o.m[k] = values[i]
	}
}

// Lookup returns the value for key and whether it exists.
func (o *Oracle) Lookup(key int) (int, bool) {
	v, ok := o.m[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (o *Oracle) Len() int {
	return len(o.m)
}

// Keys returns all keys in ascending order.
func (o *Oracle) Keys() []int {
	return slices.Sorted(maps.Keys(o.m))
}
