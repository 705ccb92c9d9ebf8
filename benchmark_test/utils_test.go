package benchmark_test

import (
	"github.com/hupe1980/pairstore"
	"github.com/hupe1980/pairstore/bench"
	"github.com/hupe1980/pairstore/testutil"
)

// benchSizes are the workload sizes every suite runs at.
var benchSizes = []int{1_000, 10_000, 100_000}

type randomData struct {
	keys   []int
	values []int

	// order is a random permutation of key indexes, so lookups do not
	// follow insertion order.
	order []int
}

func newRandomData(n int) randomData {
	rng := testutil.NewRNG(4711)
	d := randomData{
		keys:   rng.Ints(n, 1, n*10),
		values: make([]int, n),
	}
	rng.FillInts(d.values, 1, n*10)
	d.order = rng.Perm(n)
	return d
}

func mustImpl(name string) bench.Impl {
	impl, err := bench.LookupImpl(name)
	if err != nil {
		panic(err)
	}
	return impl
}

// sortedImpls are the implementations that scale to every bench size.
var sortedImpls = []string{"store", "padded", "hash", "btree"}

func filled(impl bench.Impl, d randomData) pairstore.Map {
	m := impl.New(len(d.keys))
	if err := m.BulkInsert(d.keys, d.values); err != nil {
		panic(err)
	}
	return m
}
