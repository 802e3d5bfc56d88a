package poolmap

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override default key equality, which is ==.
// It must agree with the hash function in use.
func WithEqualFunc[K comparable, V any](f EqualFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.equalFunc = f
	}
}

// Sets both the hash function and the key equality.
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = h.Hash
		t.equalFunc = h.Equal
	}
}

// Limits how far the table may grow, through Reserve or on insertion.
// It doesn't affect the initial capacity.
func WithMaxCapacity[K comparable, V any](capacity uint64) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxCapacity = min(capacity, maxCapacity)
	}
}
