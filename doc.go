// Package pairstore provides a cache-oriented sorted map from int keys to int
// values.
//
// # Layouts
//
// Two layouts implement the same semantics:
//
//	s := pairstore.New(pairstore.WithCapacity(10_000))       // parallel key and value slices
//	p := pairstore.NewPadded(pairstore.WithCapacity(10_000)) // one cache line per pair
//
// Store keeps keys and values in separate ascending slices, so a binary
// search scans only key memory. PaddedStore keeps each key beside its value,
// padded to the CPU cache-line size, which favours workloads that read the
// value of almost every probe. Both satisfy Map; use the bench package or
// the benchmark_test suites to compare them on a real workload.
//
// # Insert Paths
//
//	// Single insert: O(log n) search plus O(n) shift on a miss.
//	s.Insert(5, 50)
//	s.Insert(5, 51) // overwrites
//
//	// Bulk insert: append, stable index sort, materialize.
//	// O((n+m) log(n+m)); prefer it for large batches.
//	err := s.BulkInsert([]int{1, 2, 2}, []int{10, 20, 21})
//
// Both paths keep keys strictly ascending and unique. When a key occurs more
// than once the last writer wins, within a batch as well as against entries
// already stored. BulkInsert validates its input before mutating anything:
// mismatched lengths return an error matching ErrInvalidArgument and leave
// the store unchanged.
//
// # Lookup
//
//	v, err := s.Lookup(2) // 21, nil
//	_, err = s.Lookup(9)  // errors.Is(err, pairstore.ErrKeyNotFound)
//
// # Concurrency
//
// Stores do no locking. A single goroutine may mutate a store at a time;
// wrap it in a sync.Mutex or sync.RWMutex for shared use.
package pairstore
