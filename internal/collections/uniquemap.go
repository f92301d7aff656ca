// Package collections provides the insertion-order-preserving unique keyed
// map used throughout the HLIR data model.
package collections

import "github.com/lumen-lang/lumen/internal/diag"

// UniqueMap is an ordered mapping that rejects duplicate keys. A duplicate
// insertion indicates a bug upstream (the same item declared twice should
// have been caught before HLIR construction), so Add raises an internal
// compiler error rather than returning one.
type UniqueMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewUniqueMap builds an empty UniqueMap.
func NewUniqueMap[K comparable, V any]() *UniqueMap[K, V] {
	return &UniqueMap[K, V]{values: make(map[K]V)}
}

// Add inserts key -> value, panicking with an internal compiler error if key
// is already present.
func (m *UniqueMap[K, V]) Add(key K, value V) {
	if _, ok := m.values[key]; ok {
		diag.ICE("duplicate key in unique map: %v", key)
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *UniqueMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Contains reports whether key is present.
func (m *UniqueMap[K, V]) Contains(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *UniqueMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *UniqueMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Iter calls fn for each entry in insertion order.
func (m *UniqueMap[K, V]) Iter(fn func(K, V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
