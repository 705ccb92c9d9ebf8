package pairstore

import (
	"cmp"
	"slices"
)

// sortedUnique returns the indices of keys in ascending key order.
//
// The sort is stable, so for a run of equal keys only the index that appears
// last in keys is kept. Keys are compared, never subtracted, which keeps the
// ordering correct for the full int range.
func sortedUnique(keys []int) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})

	// Compact in place: the write position never passes the read position.
	out := order[:0]
	for i, j := range order {
		if i+1 < len(order) && keys[order[i+1]] == keys[j] {
			continue
		}
		out = append(out, j)
	}
	return out
}
