package pairstore

import (
	"iter"
	"slices"
)

// Store is a sorted integer key/value container that keeps keys and values
// in two parallel ascending slices.
//
// Keeping keys in their own slice means a lookup's binary search touches
// only key memory; the value is read once, after the match is found.
//
// Invariants after every completed operation:
//   - len(keys) == len(values)
//   - keys is strictly ascending (unique)
//
// A Store is not safe for concurrent use. Callers that share one between
// goroutines must provide their own locking.
type Store struct {
	keys   []int
	values []int
}

// New creates an empty Store.
func New(optFns ...Option) *Store {
	o := applyOptions(optFns)
	return &Store{
		keys:   make([]int, 0, o.capacity),
		values: make([]int, 0, o.capacity),
	}
}

// Insert adds the pair or, if key is already present, overwrites its value.
//
// The insertion point is found in O(log n); placing a new key shifts every
// later entry one slot right, so a miss costs O(n).
func (s *Store) Insert(key, value int) {
	i, found := slices.BinarySearch(s.keys, key)
	if found {
		s.values[i] = value
		return
	}
	s.keys = slices.Insert(s.keys, i, key)
	s.values = slices.Insert(s.values, i, value)
}

// BulkInsert merges a batch of pairs into the store.
//
// The batch is appended to the existing entries, an index permutation of the
// combined data is stable-sorted by key, and new key and value slices are
// materialized in that order. Equal keys collapse to the last writer: a later
// pair in the batch wins over an earlier one, and any batch pair wins over an
// entry that was already stored.
//
// It returns a *LengthMismatchError (matching ErrInvalidArgument) and leaves
// the store untouched if len(keys) != len(values).
func (s *Store) BulkInsert(keys, values []int) error {
	if err := checkLengths(keys, values); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	s.keys = append(s.keys, keys...)
	s.values = append(s.values, values...)

	order := sortedUnique(s.keys)

	sortedKeys := make([]int, len(order), cap(s.keys))
	sortedValues := make([]int, len(order), cap(s.values))
	for i, j := range order {
		sortedKeys[i] = s.keys[j]
		sortedValues[i] = s.values[j]
	}

	s.keys = sortedKeys
	s.values = sortedValues
	return nil
}

// Lookup returns the value stored for key, or ErrKeyNotFound.
func (s *Store) Lookup(key int) (int, error) {
	i, found := slices.BinarySearch(s.keys, key)
	if !found {
		return 0, ErrKeyNotFound
	}
	return s.values[i], nil
}

// Contains reports whether key is present.
func (s *Store) Contains(key int) bool {
	_, found := slices.BinarySearch(s.keys, key)
	return found
}

// Len returns the number of stored pairs.
func (s *Store) Len() int { return len(s.keys) }

// Cap returns the number of pairs the store can hold without reallocating.
func (s *Store) Cap() int { return min(cap(s.keys), cap(s.values)) }

// Keys returns a copy of the keys in ascending order.
func (s *Store) Keys() []int { return slices.Clone(s.keys) }

// Values returns a copy of the values, ordered by their keys.
func (s *Store) Values() []int { return slices.Clone(s.values) }

// All yields every pair in ascending key order.
//
// The store must not be mutated while the sequence is being iterated.
func (s *Store) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, k := range s.keys {
			if !yield(k, s.values[i]) {
				return
			}
		}
	}
}

// Reset removes all pairs and keeps the allocated capacity.
func (s *Store) Reset() {
	s.keys = s.keys[:0]
	s.values = s.values[:0]
}
