package bench

import (
	"github.com/google/btree"

	"github.com/hupe1980/pairstore"
)

type pair struct {
	key   int
	value int
}

// NaiveMap stores pairs in insertion order and scans linearly.
//
// Insert and Lookup are O(n), so filling it is O(n²). It is the lower bound
// the sorted layouts are measured against.
type NaiveMap struct {
	data []pair
}

// NewNaiveMap creates an empty NaiveMap.
func NewNaiveMap(capacity int) *NaiveMap {
	return &NaiveMap{data: make([]pair, 0, max(capacity, 0))}
}

// Insert updates the value of an existing key or appends a new pair.
func (m *NaiveMap) Insert(key, value int) {
	for i := range m.data {
		if m.data[i].key == key {
			m.data[i].value = value
			return
		}
	}
	m.data = append(m.data, pair{key: key, value: value})
}

// BulkInsert applies Insert to every pair, in order.
func (m *NaiveMap) BulkInsert(keys, values []int) error {
	if len(keys) != len(values) {
		return &pairstore.LengthMismatchError{Keys: len(keys), Values: len(values)}
	}
	for i, k := range keys {
		m.Insert(k, values[i])
	}
	return nil
}

// Lookup scans for key.
func (m *NaiveMap) Lookup(key int) (int, error) {
	for i := range m.data {
		if m.data[i].key == key {
			return m.data[i].value, nil
		}
	}
	return 0, pairstore.ErrKeyNotFound
}

// Len returns the number of stored pairs.
func (m *NaiveMap) Len() int { return len(m.data) }

// HashMap wraps the built-in map. It is unordered, with O(1) average insert
// and lookup.
type HashMap struct {
	m map[int]int
}

// NewHashMap creates an empty HashMap sized for capacity entries.
func NewHashMap(capacity int) *HashMap {
	return &HashMap{m: make(map[int]int, max(capacity, 0))}
}

// Insert stores value for key.
func (m *HashMap) Insert(key, value int) { m.m[key] = value }

// BulkInsert stores every pair, in order.
func (m *HashMap) BulkInsert(keys, values []int) error {
	if len(keys) != len(values) {
		return &pairstore.LengthMismatchError{Keys: len(keys), Values: len(values)}
	}
	for i, k := range keys {
		m.m[k] = values[i]
	}
	return nil
}

// Lookup returns the value for key.
func (m *HashMap) Lookup(key int) (int, error) {
	v, ok := m.m[key]
	if !ok {
		return 0, pairstore.ErrKeyNotFound
	}
	return v, nil
}

// Len returns the number of stored pairs.
func (m *HashMap) Len() int { return len(m.m) }

// btreeDegree is the B-tree node degree used by BTreeMap.
const btreeDegree = 32

// BTreeMap is an ordered map backed by an in-memory B-tree, with
// O(log n) insert and lookup. Unlike HashMap it keeps keys in order,
// like the sorted layouts it is compared against.
type BTreeMap struct {
	t *btree.BTreeG[pair]
}

// NewBTreeMap creates an empty BTreeMap. The B-tree grows node by node, so
// capacity is ignored.
func NewBTreeMap(_ int) *BTreeMap {
	return &BTreeMap{
		t: btree.NewG(btreeDegree, func(a, b pair) bool { return a.key < b.key }),
	}
}

// Insert stores value for key, replacing an existing value.
func (m *BTreeMap) Insert(key, value int) {
	m.t.ReplaceOrInsert(pair{key: key, value: value})
}

// BulkInsert stores every pair, in order.
func (m *BTreeMap) BulkInsert(keys, values []int) error {
	if len(keys) != len(values) {
		return &pairstore.LengthMismatchError{Keys: len(keys), Values: len(values)}
	}
	for i, k := range keys {
		m.Insert(k, values[i])
	}
	return nil
}

// Lookup returns the value for key.
func (m *BTreeMap) Lookup(key int) (int, error) {
	p, ok := m.t.Get(pair{key: key})
	if !ok {
		return 0, pairstore.ErrKeyNotFound
	}
	return p.value, nil
}

// Len returns the number of stored pairs.
func (m *BTreeMap) Len() int { return m.t.Len() }

// Keys returns the keys in ascending order.
func (m *BTreeMap) Keys() []int {
	keys := make([]int, 0, m.t.Len())
	m.t.Ascend(func(p pair) bool {
		keys = append(keys, p.key)
		return true
	})
	return keys
}

var (
	_ pairstore.Map = (*NaiveMap)(nil)
	_ pairstore.Map = (*HashMap)(nil)
	_ pairstore.Map = (*BTreeMap)(nil)
)
