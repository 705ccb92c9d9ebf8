// Package testutil provides testing utilities for pairstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator for integer key sequences and a
// reference model to check sorted maps against.
//
// # Random Key Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Ints(10_000, 1, 100_000) // uniform, may repeat
//	hot := rng.ZipfInts(10_000, 1.2, 1_000)
//	seq := testutil.Sequential(10_000)   // 0..9999
//
// # Differential Testing
//
//	oracle := testutil.NewOracle()
//	oracle.BulkInsert(keys, values)
//	want, ok := oracle.Lookup(k)
package testutil
