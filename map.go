// Package poolmap implements a separate-chaining hash map whose entries are
// carved out of a pool instead of being allocated one by one.
//
// The bucket array always has a prime length and grows (roughly doubling)
// before the number of entries reaches it. Every live entry is also listed
// in a dense array, so Len is O(1), full iteration touches only live entries
// and removal is O(1) through swap-and-pop.
//
// Maps are not safe for concurrent use.
package poolmap

import "iter"

// Map is a hash map from K to V. The zero value is not usable; build one with New.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with a capacity of the smallest prime >= max(3, capacity).
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Returns a new map sized by DefaultCapacity.
func NewDefault[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	return New(DefaultCapacity(), opts...)
}

// Set stores value under key, overwriting the previous value if the key is
// already present. Inserting a new key may grow the table, which fails with
// ErrCapacityExceeded past the maximum capacity.
func (m *Map[K, V]) Set(key K, value V) error {
	_, err := m.put(key, value)

	return err
}

// Returns the value stored under key and whether it was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Checks whether a key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	return m.has(key)
}

// Ref returns a pointer to the value stored under key, valid until the key
// is deleted or the map is cleared. A missing key yields ErrKeyNotFound and
// leaves the map untouched.
func (m *Map[K, V]) Ref(key K) (*V, error) {
	return m.ref(key)
}

// Find returns an iterator positioned at key, or End if it's absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return m.find(key)
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// DeleteAt removes the entry under it. The returned iterator points at the
// entry that followed it; every other outstanding iterator is invalidated.
func (m *Map[K, V]) DeleteAt(it Iterator[K, V]) (Iterator[K, V], error) {
	return m.removeAt(it)
}

// Reserve grows the table to at least capacity buckets.
// It's a no-op if the table is already that large.
func (m *Map[K, V]) Reserve(capacity uint64) error {
	return m.resize(capacity)
}

// Clear removes every entry, keeping the capacity.
func (m *Map[K, V]) Clear() {
	m.reset()
}

// Returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.len()
}

// Cap returns the length of the bucket array.
func (m *Map[K, V]) Cap() uint64 {
	return m.capacity
}

// Returns an iterator at the first entry, or End if the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.begin()
}

// Returns the end position, one past the last bucket.
func (m *Map[K, V]) End() Iterator[K, V] {
	return m.end()
}

// All yields every entry. The order is unspecified and the map must not be
// modified during iteration, apart from updating values through Ref.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all()
}

// Keys yields every key, in the same order as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.all() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value, in the same order as All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.all() {
			if !yield(v) {
				return
			}
		}
	}
}
