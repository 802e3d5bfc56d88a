package poolmap

import (
	"fmt"
	"hash/maphash"
)

// maxCapacity bounds the bucket array so that every live entry has a handle.
const maxCapacity = uint64(maxHandle)

type entry[K comparable, V any] struct {
	key   K
	value V

	// Neighbours within the bucket chain.
	prev handle
	next handle

	// Position in the dense array.
	index int
}

// table is a separate-chaining hash table. The bucket array has a prime
// length and holds the head of a doubly-linked chain per bucket. Entries
// live in the pool and every live entry is listed once in the dense array,
// which is what size and full iteration are computed from.
type table[K comparable, V any] struct {
	buckets []handle

	capacity    uint64
	maxCapacity uint64

	pool  pool[entry[K, V]]
	dense dense

	hashFunc  HashFunc[K]
	equalFunc EqualFunc[K]

	// gen changes whenever outstanding iterators may have been invalidated.
	gen     uint64
	resizes int

	emptyV V
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	normalizedCapacity := NextPrime(uint64(max(capacity, 0)))

	t.buckets = make([]handle, normalizedCapacity)
	t.capacity = normalizedCapacity
	t.maxCapacity = maxCapacity
	t.dense = make(dense, 0, normalizedCapacity)
	t.pool.init(int(normalizedCapacity))

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.equalFunc == nil {
		t.equalFunc = DefaultEqualFunc[K]
	}
}

func (t *table[K, V]) len() int {
	return t.dense.len()
}

// lookup returns the bucket of the key and the entry holding it, if any.
func (t *table[K, V]) lookup(key K) (uint64, handle) {
	b := t.hashFunc(key) % t.capacity

	for h := t.buckets[b]; h != nilHandle; {
		e := t.pool.at(h)
		if t.equalFunc(e.key, key) {
			return b, h
		}

		h = e.next
	}

	return b, nilHandle
}

func (t *table[K, V]) get(key K) (V, bool) {
	if _, h := t.lookup(key); h != nilHandle {
		return t.pool.at(h).value, true
	}

	return t.emptyV, false
}

func (t *table[K, V]) has(key K) bool {
	_, h := t.lookup(key)

	return h != nilHandle
}

// ref returns the address of the value stored for key. The address stays
// valid until the entry is removed.
func (t *table[K, V]) ref(key K) (*V, error) {
	_, h := t.lookup(key)
	if h == nilHandle {
		return nil, ErrKeyNotFound
	}

	return &t.pool.at(h).value, nil
}

// put stores the value under key, overwriting an existing one.
// Returns whether the key is new.
func (t *table[K, V]) put(key K, value V) (bool, error) {
	hash := t.hashFunc(key)
	b := hash % t.capacity

	for h := t.buckets[b]; h != nilHandle; {
		e := t.pool.at(h)
		if t.equalFunc(e.key, key) {
			e.value = value
			return false, nil
		}

		h = e.next
	}

	// Keep size below capacity: grow before this entry would fill the table.
	if uint64(t.dense.len())+1 >= t.capacity {
		if err := t.resize(t.capacity * 2); err != nil {
			return false, err
		}

		b = hash % t.capacity
	}

	h := t.pool.acquire()
	e := t.pool.at(h)
	e.key = key
	e.value = value
	e.index = t.dense.append(h)

	t.link(t.buckets, b, h)

	return true, nil
}

// link makes h the head of bucket b.
func (t *table[K, V]) link(buckets []handle, b uint64, h handle) {
	e := t.pool.at(h)
	head := buckets[b]

	e.prev = nilHandle
	e.next = head

	if head != nilHandle {
		t.pool.at(head).prev = h
	}

	buckets[b] = h
}

func (t *table[K, V]) unlink(b uint64, h handle) {
	e := t.pool.at(h)

	if e.prev != nilHandle {
		t.pool.at(e.prev).next = e.next
	} else {
		t.buckets[b] = e.next
	}

	if e.next != nilHandle {
		t.pool.at(e.next).prev = e.prev
	}
}

// free drops h from the dense array and returns its slot to the pool.
// The entry moved into its dense position gets its index rewritten here,
// so the dense array never disagrees with the entries.
func (t *table[K, V]) free(h handle) {
	i := t.pool.at(h).index

	if moved, ok := t.dense.removeAt(i); ok {
		t.pool.at(moved).index = i
	}

	t.pool.release(h)
}

// remove unlinks the entry h found in bucket b and frees it.
func (t *table[K, V]) remove(b uint64, h handle) {
	t.unlink(b, h)
	t.free(h)
	t.gen++
}

func (t *table[K, V]) delete(key K) bool {
	b, h := t.lookup(key)
	if h == nilHandle {
		return false
	}

	t.remove(b, h)

	return true
}

// resize rebuilds the bucket array with the smallest prime capacity >= target.
// It's a no-op if the table is already that large.
func (t *table[K, V]) resize(target uint64) error {
	if target <= t.capacity {
		return nil
	}

	if target > t.maxCapacity {
		return fmt.Errorf("%w: need %d buckets, limit is %d", ErrCapacityExceeded, target, t.maxCapacity)
	}

	capacity := NextPrime(target)
	if capacity == 0 || capacity > t.maxCapacity {
		return fmt.Errorf("%w: need %d buckets, limit is %d", ErrCapacityExceeded, capacity, t.maxCapacity)
	}

	buckets := make([]handle, capacity)

	// Walk the dense array rather than the old chains: relinking an entry
	// overwrites the chain pointers we'd be following.
	for _, h := range t.dense {
		t.link(buckets, t.hashFunc(t.pool.at(h).key)%capacity, h)
	}

	t.buckets = buckets
	t.capacity = capacity
	t.dense.reserve(int(capacity))
	t.pool.reserve(int(capacity))

	t.resizes++
	t.gen++

	return nil
}

func (t *table[K, V]) reset() {
	if t.dense.len() == 0 {
		return
	}

	clear(t.buckets)

	for _, h := range t.dense {
		t.pool.release(h)
	}

	t.dense.reset()
	t.gen++
}

func (t *table[K, V]) Stats() Stats {
	stats := Stats{
		Size:      t.dense.len(),
		Capacity:  int(t.capacity),
		PoolSlots: t.pool.slots(),
		PoolFree:  len(t.pool.free),
		Resizes:   t.resizes,
	}

	stats.LoadFactor = float32(stats.Size) / float32(stats.Capacity)

	for _, head := range t.buckets {
		if head == nilHandle {
			continue
		}

		stats.UsedBuckets++

		n := 0
		for h := head; h != nilHandle; h = t.pool.at(h).next {
			n++
		}

		stats.LongestChain = max(stats.LongestChain, n)
	}

	return stats
}
