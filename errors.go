package pairstore

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned by Lookup when no entry has the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidArgument is returned when an operation is called with
	// arguments that violate its precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// LengthMismatchError indicates that BulkInsert was called with key and
// value slices of different lengths.
//
// It matches ErrInvalidArgument via errors.Is.
type LengthMismatchError struct {
	Keys   int
	Values int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("invalid argument: %d keys but %d values", e.Keys, e.Values)
}

func (e *LengthMismatchError) Unwrap() error { return ErrInvalidArgument }

func checkLengths(keys, values []int) error {
	if len(keys) != len(values) {
		return &LengthMismatchError{Keys: len(keys), Values: len(values)}
	}
	return nil
}
