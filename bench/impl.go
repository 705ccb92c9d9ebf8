package bench

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/pairstore"
)

// ErrUnknownImpl is returned for an implementation name that is not registered.
var ErrUnknownImpl = errors.New("unknown implementation")

// Factory creates an empty map pre-sized for capacity entries.
type Factory func(capacity int) pairstore.Map

// Impl is a named map implementation.
type Impl struct {
	Name string
	New  Factory
}

var registry = map[string]Factory{
	"store": func(c int) pairstore.Map {
		return pairstore.New(pairstore.WithCapacity(c))
	},
	"padded": func(c int) pairstore.Map {
		return pairstore.NewPadded(pairstore.WithCapacity(c))
	},
	"naive": func(c int) pairstore.Map { return NewNaiveMap(c) },
	"hash":  func(c int) pairstore.Map { return NewHashMap(c) },
	"btree": func(c int) pairstore.Map { return NewBTreeMap(c) },
}

// ImplNames returns the registered implementation names in sorted order.
func ImplNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupImpl returns the implementation registered under name.
func LookupImpl(name string) (Impl, error) {
	f, ok := registry[name]
	if !ok {
		return Impl{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownImpl, name, ImplNames())
	}
	return Impl{Name: name, New: f}, nil
}
