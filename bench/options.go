package bench

import "math"

const (
	// DefaultOps is the workload size used when WithOps is not given.
	DefaultOps = 10_000
	// DefaultSeed seeds workload generation when WithSeed is not given.
	DefaultSeed = 42
	// MaxOps bounds the workload size so that random keys (up to 10n)
	// stay within 32 bits.
	MaxOps = math.MaxInt32 / 10
)

type options struct {
	logger       *Logger
	metrics      MetricsCollector
	impls        []string
	kinds        []Kind
	ops          int
	seed         int64
	capacityHint int
}

// Option configures a Runner.
type Option func(*options)

// WithLogger configures structured logging for phases and the run summary.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures the collector that receives phase timings.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithImpls selects the implementations to measure, by registry name.
// By default every registered implementation runs.
func WithImpls(names ...string) Option {
	return func(o *options) {
		o.impls = names
	}
}

// WithWorkloads selects the workload kinds. By default every kind runs.
func WithWorkloads(kinds ...Kind) Option {
	return func(o *options) {
		o.kinds = kinds
	}
}

// WithOps sets the number of pairs per workload.
func WithOps(n int) Option {
	return func(o *options) {
		o.ops = n
	}
}

// WithSeed sets the seed for workload generation.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithCapacityHint sets the capacity every measured map is created with.
// A negative value (the default) sizes maps for the whole workload; zero
// disables pre-sizing.
func WithCapacityHint(n int) Option {
	return func(o *options) {
		o.capacityHint = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:       NoopLogger(),
		metrics:      NoopMetricsCollector{},
		impls:        ImplNames(),
		kinds:        Kinds(),
		ops:          DefaultOps,
		seed:         DefaultSeed,
		capacityHint: -1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
