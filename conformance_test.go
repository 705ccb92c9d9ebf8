package pairstore_test

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pairstore"
	"github.com/hupe1980/pairstore/testutil"
)

// sortedMap is the full API shared by both layouts.
type sortedMap interface {
	pairstore.Map
	Contains(key int) bool
	Cap() int
	Keys() []int
	Values() []int
	Reset()
}

type layout struct {
	name string
	new  func(...pairstore.Option) sortedMap
}

var layouts = []layout{
	{"parallel", func(o ...pairstore.Option) sortedMap { return pairstore.New(o...) }},
	{"padded", func(o ...pairstore.Option) sortedMap { return pairstore.NewPadded(o...) }},
}

func forEachLayout(t *testing.T, fn func(t *testing.T, newMap func(...pairstore.Option) sortedMap)) {
	t.Helper()
	for _, l := range layouts {
		t.Run(l.name, func(t *testing.T) {
			fn(t, l.new)
		})
	}
}

func TestEmptyStoreMiss(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		m := newMap()

		for _, k := range []int{0, -1, 1, 42} {
			_, err := m.Lookup(k)
			assert.ErrorIs(t, err, pairstore.ErrKeyNotFound)
		}
		assert.Equal(t, 0, m.Len())
	})
}

func TestCapacityHint(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		m := newMap(pairstore.WithCapacity(128))
		assert.GreaterOrEqual(t, m.Cap(), 128)
		assert.Equal(t, 0, m.Len())

		for i := range 128 {
			m.Insert(i, i)
		}
		assert.Equal(t, 128, m.Cap(), "no reallocation within the hint")

		neg := newMap(pairstore.WithCapacity(-5))
		assert.Equal(t, 0, neg.Len())
		assert.GreaterOrEqual(t, neg.Cap(), 0)
	})
}

func TestScenarioA(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		m := newMap()
		m.Insert(5, 50)
		m.Insert(3, 30)
		m.Insert(8, 80)

		assert.Equal(t, []int{3, 5, 8}, m.Keys())
		assert.Equal(t, []int{30, 50, 80}, m.Values())

		v, err := m.Lookup(5)
		require.NoError(t, err)
		assert.Equal(t, 50, v)
	})
}

func TestScenarioB(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		m := newMap()
		require.NoError(t, m.BulkInsert([]int{1, 2}, []int{10, 20}))

		v, err := m.Lookup(1)
		require.NoError(t, err)
		assert.Equal(t, 10, v)

		v, err = m.Lookup(2)
		require.NoError(t, err)
		assert.Equal(t, 20, v)
	})
}

func TestBulkInsertDuplicatesLastWriterWins(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		t.Run("within batch", func(t *testing.T) {
			m := newMap()
			require.NoError(t, m.BulkInsert([]int{4, 4}, []int{40, 41}))

			assert.Equal(t, 1, m.Len())
			v, err := m.Lookup(4)
			require.NoError(t, err)
			assert.Equal(t, 41, v)
		})

		t.Run("against prior state", func(t *testing.T) {
			m := newMap()
			m.Insert(4, 40)
			m.Insert(6, 60)
			require.NoError(t, m.BulkInsert([]int{6, 5}, []int{61, 50}))

			assert.Equal(t, []int{4, 5, 6}, m.Keys())
			assert.Equal(t, []int{40, 50, 61}, m.Values())
		})

		t.Run("unsorted batch with runs", func(t *testing.T) {
			m := newMap()
			require.NoError(t, m.BulkInsert(
				[]int{9, 1, 9, 3, 1, 9},
				[]int{90, 10, 91, 30, 11, 92},
			))

			assert.Equal(t, []int{1, 3, 9}, m.Keys())
			assert.Equal(t, []int{11, 30, 92}, m.Values())
		})
	})
}

func TestBulkInsertLengthMismatch(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		m := newMap()
		m.Insert(1, 10)
		m.Insert(2, 20)
		keysBefore, valuesBefore := m.Keys(), m.Values()

		err := m.BulkInsert([]int{3, 4}, []int{30})
		require.Error(t, err)
		assert.ErrorIs(t, err, pairstore.ErrInvalidArgument)

		var lm *pairstore.LengthMismatchError
		require.True(t, errors.As(err, &lm))
		assert.Equal(t, 2, lm.Keys)
		assert.Equal(t, 1, lm.Values)

		assert.Equal(t, keysBefore, m.Keys())
		assert.Equal(t, valuesBefore, m.Values())

		// nil vs empty is not a mismatch.
		assert.NoError(t, m.BulkInsert(nil, []int{}))
		assert.Equal(t, 2, m.Len())
	})
}

func TestBulkInsertCopiesInput(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		keys := []int{2, 1}
		values := []int{20, 10}
		m := newMap()
		require.NoError(t, m.BulkInsert(keys, values))

		keys[0], values[0] = 99, 990

		assert.Equal(t, []int{1, 2}, m.Keys())
		assert.Equal(t, []int{10, 20}, m.Values())
	})
}

func TestRoundTripAndUpdate(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		m := newMap()
		m.Insert(7, 1)

		v, err := m.Lookup(7)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		m.Insert(7, 2)
		v, err = m.Lookup(7)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, m.Len())
		assert.True(t, m.Contains(7))
		assert.False(t, m.Contains(8))
	})
}

func TestExtremeKeys(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		const maxInt = int(^uint(0) >> 1)
		const minInt = -maxInt - 1

		m := newMap()
		require.NoError(t, m.BulkInsert([]int{maxInt, 0, minInt}, []int{1, 2, 3}))
		m.Insert(-1, 4)

		assert.Equal(t, []int{minInt, -1, 0, maxInt}, m.Keys())
		v, err := m.Lookup(minInt)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	})
}

func TestReset(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		m := newMap(pairstore.WithCapacity(16))
		require.NoError(t, m.BulkInsert([]int{1, 2, 3}, []int{1, 2, 3}))

		m.Reset()

		assert.Equal(t, 0, m.Len())
		assert.GreaterOrEqual(t, m.Cap(), 16)
		_, err := m.Lookup(1)
		assert.ErrorIs(t, err, pairstore.ErrKeyNotFound)
	})
}

func TestDifferentialAgainstOracle(t *testing.T) {
	forEachLayout(t, func(t *testing.T, newMap func(...pairstore.Option) sortedMap) {
		rng := testutil.NewRNG(4711)
		oracle := testutil.NewOracle()
		m := newMap()

		for round := range 50 {
			if round%5 == 0 {
				n := rng.Intn(200)
				keys := rng.Ints(n, -500, 500)
				values := rng.Ints(n, 0, 1<<20)
				require.NoError(t, m.BulkInsert(keys, values))
				oracle.BulkInsert(keys, values)
			} else {
				for range 20 {
					k, v := rng.Intn(1001)-500, rng.Intn(1<<20)
					m.Insert(k, v)
					oracle.Insert(k, v)
				}
			}

			keys := m.Keys()
			require.True(t, testutil.IsStrictlyAscending(keys), "round %d", round)
			require.Equal(t, oracle.Keys(), keys, "round %d", round)
			require.Equal(t, oracle.Len(), m.Len())
		}

		for k := -510; k <= 510; k++ {
			want, ok := oracle.Lookup(k)
			got, err := m.Lookup(k)
			if !ok {
				assert.ErrorIs(t, err, pairstore.ErrKeyNotFound, "key %d", k)
				continue
			}
			require.NoError(t, err, "key %d", k)
			assert.Equal(t, want, got, "key %d", k)
		}
	})
}

func TestLayoutsAgree(t *testing.T) {
	rng := testutil.NewRNG(42)
	keys := rng.Ints(2000, 0, 999)
	values := rng.Ints(2000, 0, 1<<20)

	s := pairstore.New()
	p := pairstore.NewPadded()
	require.NoError(t, s.BulkInsert(keys[:1000], values[:1000]))
	require.NoError(t, p.BulkInsert(keys[:1000], values[:1000]))
	for i := 1000; i < 2000; i++ {
		s.Insert(keys[i], values[i])
		p.Insert(keys[i], values[i])
	}

	assert.Equal(t, maps.Collect(s.All()), maps.Collect(p.All()))
	assert.Equal(t, s.Keys(), p.Keys())
}
