package poolmap

import "iter"

// Set is a Map without values. It shares the table, so it grows, iterates
// and removes the same way.
type Set[K comparable] struct {
	table[K, struct{}]
}

// Returns a new set with a capacity of the smallest prime >= max(3, capacity).
func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(capacity, opts...)

	return &s
}

// Returns a new set sized by DefaultCapacity.
func NewDefaultSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	return NewSet(DefaultCapacity(), opts...)
}

// Puts a key in the set.
// Returns whether the key is new.
func (s *Set[K]) Put(key K) (bool, error) {
	return s.put(key, struct{}{})
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.has(key)
}

// Deletes a key from the set.
// Returns whether the key was present.
func (s *Set[K]) Delete(key K) bool {
	return s.delete(key)
}

// Grows the table to at least capacity buckets.
func (s *Set[K]) Reserve(capacity uint64) error {
	return s.resize(capacity)
}

// Removes every key, keeping the capacity.
func (s *Set[K]) Clear() {
	s.reset()
}

// Returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.len()
}

// Returns the length of the bucket array.
func (s *Set[K]) Cap() uint64 {
	return s.capacity
}

// Yields every key. The order is unspecified.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.all() {
			if !yield(k) {
				return
			}
		}
	}
}
