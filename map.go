package pairstore

// Map is the operation set shared by both store layouts and by the
// baselines the benchmark harness compares them against.
type Map interface {
	// Insert adds the pair or overwrites the value of an existing key.
	Insert(key, value int)

	// BulkInsert merges a batch of pairs. Mismatched lengths fail with an
	// error matching ErrInvalidArgument and leave the map unchanged.
	BulkInsert(keys, values []int) error

	// Lookup returns the value for key or ErrKeyNotFound.
	Lookup(key int) (int, error)

	// Len returns the number of distinct keys stored.
	Len() int
}

var (
	_ Map = (*Store)(nil)
	_ Map = (*PaddedStore)(nil)
)
