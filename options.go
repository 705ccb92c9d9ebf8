package pairstore

type options struct {
	capacity int
}

// Option configures Store and PaddedStore construction.
type Option func(*options)

// WithCapacity reserves backing storage for at least n entries.
//
// The hint only affects allocation: length and contents are unchanged.
// A negative n is treated as zero.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

func applyOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
