package poolmap

import "iter"

// Iterator is a forward cursor over the buckets of a Map. It visits buckets
// in increasing order and each chain from its head, so the newest entry of a
// bucket comes first. The end position is (capacity, no entry).
//
// An iterator is invalidated by any resize, removal or Clear. Inserting a
// key without growing the table leaves iterators valid, though the new entry
// may not be visited.
type Iterator[K comparable, V any] struct {
	t      *table[K, V]
	bucket uint64
	h      handle
	gen    uint64
}

func (t *table[K, V]) begin() Iterator[K, V] {
	for b, h := range t.buckets {
		if h != nilHandle {
			return Iterator[K, V]{t: t, bucket: uint64(b), h: h, gen: t.gen}
		}
	}

	return t.end()
}

func (t *table[K, V]) end() Iterator[K, V] {
	return Iterator[K, V]{t: t, bucket: t.capacity, gen: t.gen}
}

func (t *table[K, V]) find(key K) Iterator[K, V] {
	b, h := t.lookup(key)
	if h == nilHandle {
		return t.end()
	}

	return Iterator[K, V]{t: t, bucket: b, h: h, gen: t.gen}
}

// removeAt deletes the entry under it and returns an iterator to the entry
// that followed it.
func (t *table[K, V]) removeAt(it Iterator[K, V]) (Iterator[K, V], error) {
	if it.t != t || it.gen != t.gen {
		return t.end(), ErrStaleIterator
	}

	if it.h == nilHandle {
		return t.end(), ErrEndIterator
	}

	next := it
	next.Next()

	t.remove(it.bucket, it.h)

	// Removal touches neither the bucket nor the slot of the following entry.
	next.gen = t.gen

	return next, nil
}

// all yields every live entry in dense array order.
func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < t.dense.len(); i++ {
			e := t.pool.at(t.dense.at(i))
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Next moves to the following entry, or to the end position.
// Calling Next at the end position does nothing.
func (it *Iterator[K, V]) Next() {
	if it.h == nilHandle {
		return
	}

	it.h = it.t.pool.at(it.h).next

	for it.h == nilHandle {
		it.bucket++
		if it.bucket >= it.t.capacity {
			it.bucket = it.t.capacity
			return
		}

		it.h = it.t.buckets[it.bucket]
	}
}

// Equal reports whether both iterators are at the same position.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.bucket == other.bucket && it.h == other.h
}

// IsEnd reports whether the iterator is at the end position.
func (it Iterator[K, V]) IsEnd() bool {
	return it.h == nilHandle
}

// Valid reports whether nothing has invalidated the iterator since it was
// obtained. An iterator at the end position may still be valid.
func (it Iterator[K, V]) Valid() bool {
	return it.t != nil && it.gen == it.t.gen
}

func (it Iterator[K, V]) entry() *entry[K, V] {
	if it.h == nilHandle {
		panic("poolmap: dereferencing end iterator")
	}

	return it.t.pool.at(it.h)
}

// Key returns the key of the current entry. Panics at the end position.
func (it Iterator[K, V]) Key() K {
	return it.entry().key
}

// Value returns the value of the current entry. Panics at the end position.
func (it Iterator[K, V]) Value() V {
	return it.entry().value
}

// SetValue overwrites the value of the current entry. Panics at the end position.
func (it Iterator[K, V]) SetValue(v V) {
	it.entry().value = v
}

// ValuePtr returns the address of the value, valid until the entry is removed.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.entry().value
}
