package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pairstore/internal/conv"
	"github.com/hupe1980/pairstore/testutil"
)

// Kind selects how workload keys are generated.
type Kind string

const (
	// Sequential keys are 0..n-1 in ascending order, so every single insert
	// appends at the end.
	Sequential Kind = "sequential"
	// Random keys are uniform in [1, 10n] and may repeat.
	Random Kind = "random"
	// Zipf keys are skewed towards small values in [0, n], producing many
	// repeated hot keys.
	Zipf Kind = "zipf"
)

// zipfSkew is the Zipf exponent used for Zipf workloads.
const zipfSkew = 1.2

// ErrUnknownWorkload is returned for a workload kind that does not exist.
var ErrUnknownWorkload = errors.New("unknown workload")

// Kinds lists every workload kind.
func Kinds() []Kind {
	return []Kind{Sequential, Random, Zipf}
}

// ParseKind converts a name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkload, s)
}

// Workload is a deterministic sequence of key/value pairs.
type Workload struct {
	Kind   Kind
	Seed   int64
	Keys   []int
	Values []int
}

// NewWorkload generates n pairs of the given kind.
//
// Keys and values are produced concurrently from two RNGs derived from seed,
// so the same arguments always yield the same workload. Values are uniform
// in [1, 10n].
func NewWorkload(ctx context.Context, kind Kind, n int, seed int64) (*Workload, error) {
	if n <= 0 {
		return nil, fmt.Errorf("workload size must be positive, got %d", n)
	}

	w := &Workload{Kind: kind, Seed: seed}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		keys, err := generateKeys(ctx, kind, n, seed)
		if err != nil {
			return err
		}
		w.Keys = keys
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.Values = testutil.NewRNG(seed+1).Ints(n, 1, n*10)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return w, nil
}

func generateKeys(ctx context.Context, kind Kind, n int, seed int64) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch kind {
	case Sequential:
		return testutil.Sequential(n), nil
	case Random:
		return testutil.NewRNG(seed).Ints(n, 1, n*10), nil
	case Zipf:
		return testutil.NewRNG(seed).ZipfInts(n, zipfSkew, uint64(n)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkload, kind)
	}
}

// Len returns the number of pairs in the workload.
func (w *Workload) Len() int { return len(w.Keys) }

// KeyStats summarizes the key set of a workload.
type KeyStats struct {
	Distinct int `json:"distinct"`
	Min      int `json:"min"`
	Max      int `json:"max"`
}

// KeyStats counts distinct keys and the key range.
//
// Keys that fit into uint32 are counted in a roaring bitmap; anything else
// (negative or wider keys) falls back to a Go map.
func (w *Workload) KeyStats() (KeyStats, error) {
	if len(w.Keys) == 0 {
		return KeyStats{}, nil
	}

	bm := roaring.New()
	var other map[int]struct{}
	stats := KeyStats{Min: w.Keys[0], Max: w.Keys[0]}

	for _, k := range w.Keys {
		stats.Min = min(stats.Min, k)
		stats.Max = max(stats.Max, k)

		u, err := conv.IntToUint32(k)
		if err != nil {
			if other == nil {
				other = make(map[int]struct{})
			}
			other[k] = struct{}{}
			continue
		}
		bm.Add(u)
	}

	distinct, err := conv.Uint64ToInt(bm.GetCardinality())
	if err != nil {
		return KeyStats{}, fmt.Errorf("count distinct keys: %w", err)
	}
	stats.Distinct = distinct + len(other)
	return stats, nil
}
