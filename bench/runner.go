package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/pairstore"
)

var (
	// ErrInvalidOps is returned when the workload size is out of range.
	ErrInvalidOps = errors.New("invalid number of operations")

	// ErrVerificationFailed is returned when a phase left a map in an
	// unexpected state: a lookup missed or Len differs from the number of
	// distinct workload keys.
	ErrVerificationFailed = errors.New("verification failed")
)

// Runner executes benchmark phases for a set of implementations and
// workloads. A Runner runs phases one at a time.
type Runner struct {
	opts  options
	impls []Impl
}

// NewRunner validates the options and creates a Runner.
func NewRunner(optFns ...Option) (*Runner, error) {
	o := applyOptions(optFns)

	if o.ops <= 0 || o.ops > MaxOps {
		return nil, fmt.Errorf("%w: %d (must be in [1, %d])", ErrInvalidOps, o.ops, MaxOps)
	}
	if len(o.kinds) == 0 {
		return nil, fmt.Errorf("%w: no workloads selected", ErrUnknownWorkload)
	}
	for _, k := range o.kinds {
		if _, err := ParseKind(string(k)); err != nil {
			return nil, err
		}
	}

	impls := make([]Impl, 0, len(o.impls))
	for _, name := range o.impls {
		impl, err := LookupImpl(name)
		if err != nil {
			return nil, err
		}
		impls = append(impls, impl)
	}
	if len(impls) == 0 {
		return nil, fmt.Errorf("%w: no implementations selected", ErrUnknownImpl)
	}

	return &Runner{opts: o, impls: impls}, nil
}

// Run generates every workload and measures every implementation on it.
//
// Verification failures do not stop the run; they are reported in the
// returned Report and joined into the returned error. Cancellation is
// checked between phases.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{
		RunID:    uuid.NewString(),
		Started:  time.Now(),
		Hardware: DetectHardware(),
	}

	var errs []error
	for _, kind := range r.opts.kinds {
		w, err := NewWorkload(ctx, kind, r.opts.ops, r.opts.seed)
		if err != nil {
			return rep, fmt.Errorf("generate %s workload: %w", kind, err)
		}
		stats, err := w.KeyStats()
		if err != nil {
			return rep, fmt.Errorf("%s workload: %w", kind, err)
		}

		rep.Workloads = append(rep.Workloads, WorkloadSummary{
			Kind:     kind,
			Ops:      w.Len(),
			Seed:     w.Seed,
			KeyStats: stats,
		})

		wlog := r.opts.logger.WithWorkload(kind)
		wlog.LogWorkload(ctx, w, stats)

		for _, impl := range r.impls {
			if err := ctx.Err(); err != nil {
				return rep, err
			}

			ilog := wlog.WithImpl(impl.Name)
			for _, res := range r.measure(impl, w, stats.Distinct) {
				ilog.LogPhase(ctx, res)
				if res.Err != "" || !res.Verified {
					errs = append(errs, fmt.Errorf("%s/%s/%s: %w", kind, impl.Name, res.Op, ErrVerificationFailed))
				}
				rep.Results = append(rep.Results, res)
			}
		}
	}

	err := errors.Join(errs...)
	r.opts.logger.LogReport(ctx, rep, err)
	return rep, err
}

func (r *Runner) capacity(n int) int {
	if r.opts.capacityHint < 0 {
		return n
	}
	return r.opts.capacityHint
}

// measure runs the insert, lookup, bulk insert and bulk lookup phases for
// one implementation. Only the calls into the map are timed.
//
// Each lookup phase queries every workload key against the map filled by
// the preceding insert phase, so a map that reports the right Len but lost
// or altered keys fails verification.
func (r *Runner) measure(impl Impl, w *Workload, distinct int) []Result {
	capHint := r.capacity(w.Len())
	base := Result{Impl: impl.Name, Workload: w.Kind, Ops: w.Len()}

	m := impl.New(capHint)
	start := time.Now()
	for i, k := range w.Keys {
		m.Insert(k, w.Values[i])
	}
	elapsed := time.Since(start)
	r.opts.metrics.RecordInsert(impl.Name, w.Kind, w.Len(), elapsed)

	insert := base
	insert.Op = OpInsert
	insert.Duration = elapsed
	insert.Len = m.Len()
	insert.Verified = m.Len() == distinct

	lookup := r.lookupPhase(base, OpLookup, m, w)

	bm := impl.New(capHint)
	start = time.Now()
	err := bm.BulkInsert(w.Keys, w.Values)
	elapsed = time.Since(start)
	r.opts.metrics.RecordBulkInsert(impl.Name, w.Kind, w.Len(), elapsed, err)

	bulkLookup := r.lookupPhase(base, OpBulkLookup, bm, w)

	bulk := base
	bulk.Op = OpBulkInsert
	bulk.Duration = elapsed
	bulk.Len = bm.Len()
	bulk.Misses = bulkLookup.Misses
	bulk.Verified = err == nil && bm.Len() == distinct && bulkLookup.Misses == 0
	if err != nil {
		bulk.Err = err.Error()
	}

	return []Result{insert, lookup, bulk, bulkLookup}
}

// lookupPhase times a lookup of every workload key in m.
func (r *Runner) lookupPhase(base Result, op Op, m pairstore.Map, w *Workload) Result {
	misses := 0
	start := time.Now()
	for _, k := range w.Keys {
		if _, err := m.Lookup(k); err != nil {
			misses++
		}
	}
	elapsed := time.Since(start)
	r.opts.metrics.RecordLookup(base.Impl, w.Kind, op, w.Len(), misses, elapsed)

	res := base
	res.Op = op
	res.Duration = elapsed
	res.Len = m.Len()
	res.Misses = misses
	res.Verified = misses == 0
	return res
}
