// Package conv provides safe integer type conversion utilities.
//
// The benchmark harness stores workload keys in 32-bit bitmaps and reports
// bitmap cardinalities as int; these helpers reject values that do not fit
// instead of silently wrapping.
package conv
