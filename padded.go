package pairstore

import (
	"cmp"
	"iter"
	"slices"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
	pairSize      = 2 * unsafe.Sizeof(int(0))
)

// paddedPair occupies a full cache line (or just the two ints on platforms
// that report a smaller line).
type paddedPair struct {
	key   int
	value int
	_     [max(cacheLineSize, pairSize) - pairSize]byte
}

func comparePair(p paddedPair, key int) int {
	return cmp.Compare(p.key, key)
}

// PaddedStore has the same semantics as Store but keeps each key next to its
// value, padded to the platform cache-line size.
//
// A matched lookup reads key and value from one line, while the binary
// search itself touches a full line per probe. Go does not align the backing
// array to a line boundary, so a pair may still straddle two lines.
//
// A PaddedStore is not safe for concurrent use.
type PaddedStore struct {
	pairs []paddedPair
}

// NewPadded creates an empty PaddedStore.
func NewPadded(optFns ...Option) *PaddedStore {
	o := applyOptions(optFns)
	return &PaddedStore{
		pairs: make([]paddedPair, 0, o.capacity),
	}
}

// Insert adds the pair or overwrites the value of an existing key.
func (s *PaddedStore) Insert(key, value int) {
	i, found := slices.BinarySearchFunc(s.pairs, key, comparePair)
	if found {
		s.pairs[i].value = value
		return
	}
	s.pairs = slices.Insert(s.pairs, i, paddedPair{key: key, value: value})
}

// BulkInsert merges a batch of pairs with the same last-writer-wins rule as
// Store.BulkInsert.
//
// Pairs are reordered through an index permutation rather than sorted in
// place, so each padded pair is moved once.
func (s *PaddedStore) BulkInsert(keys, values []int) error {
	if err := checkLengths(keys, values); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	for i, k := range keys {
		s.pairs = append(s.pairs, paddedPair{key: k, value: values[i]})
	}

	all := make([]int, len(s.pairs))
	for i := range s.pairs {
		all[i] = s.pairs[i].key
	}
	order := sortedUnique(all)

	sorted := make([]paddedPair, len(order), cap(s.pairs))
	for i, j := range order {
		sorted[i] = s.pairs[j]
	}
	s.pairs = sorted
	return nil
}

// Lookup returns the value stored for key, or ErrKeyNotFound.
func (s *PaddedStore) Lookup(key int) (int, error) {
	i, found := slices.BinarySearchFunc(s.pairs, key, comparePair)
	if !found {
		return 0, ErrKeyNotFound
	}
	return s.pairs[i].value, nil
}

// Contains reports whether key is present.
func (s *PaddedStore) Contains(key int) bool {
	_, found := slices.BinarySearchFunc(s.pairs, key, comparePair)
	return found
}

// Len returns the number of stored pairs.
func (s *PaddedStore) Len() int { return len(s.pairs) }

// Cap returns the number of pairs the store can hold without reallocating.
func (s *PaddedStore) Cap() int { return cap(s.pairs) }

// Keys returns a copy of the keys in ascending order.
func (s *PaddedStore) Keys() []int {
	out := make([]int, len(s.pairs))
	for i := range s.pairs {
		out[i] = s.pairs[i].key
	}
	return out
}

// Values returns a copy of the values, ordered by their keys.
func (s *PaddedStore) Values() []int {
	out := make([]int, len(s.pairs))
	for i := range s.pairs {
		out[i] = s.pairs[i].value
	}
	return out
}

// All yields every pair in ascending key order.
func (s *PaddedStore) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range s.pairs {
			if !yield(s.pairs[i].key, s.pairs[i].value) {
				return
			}
		}
	}
}

// Reset removes all pairs and keeps the allocated capacity.
func (s *PaddedStore) Reset() {
	s.pairs = s.pairs[:0]
}
