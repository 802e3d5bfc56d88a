package poolmap

const (
	chunkShift = 6
	chunkSize  = 1 << chunkShift
	chunkMask  = chunkSize - 1
)

// handle addresses a slot in the pool. Buckets, chain links and the dense
// array refer to entries by handle, never by pointer.
type handle uint32

const (
	nilHandle handle = 0

	// maxHandle is the largest handle the pool can give out.
	maxHandle = ^handle(0)
)

// pool is a slot arena. Slots are carved out of fixed-size chunks, so a
// live slot never moves, even while the pool grows. Released slots are
// kept on a free stack and reused before new ones are carved out.
//
// Slot 0 is reserved so that the zero handle can stand for "no entry".
type pool[T any] struct {
	chunks [][]T
	free   []handle

	// next is the first handle that was never given out.
	next handle
	live int
}

func (p *pool[T]) init(capacity int) {
	p.chunks = nil
	p.free = nil
	p.next = 1
	p.live = 0

	p.reserve(capacity)
}

// reserve carves out chunks until n slots (besides the reserved one) are backed.
func (p *pool[T]) reserve(n int) {
	for len(p.chunks)*chunkSize < n+1 {
		p.chunks = append(p.chunks, make([]T, chunkSize))
	}
}

// acquire hands out a zeroed slot.
// Callers must not need more than maxHandle live slots.
func (p *pool[T]) acquire() handle {
	p.live++

	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]

		return h
	}

	h := p.next
	p.next++
	p.reserve(int(h))

	return h
}

// release zeroes the slot, so the pool doesn't retain whatever it referenced,
// and puts it back on the free stack.
func (p *pool[T]) release(h handle) {
	var zero T
	*p.at(h) = zero

	p.free = append(p.free, h)
	p.live--
}

func (p *pool[T]) at(h handle) *T {
	return &p.chunks[h>>chunkShift][h&chunkMask]
}

// slots returns the number of slots ever given out.
func (p *pool[T]) slots() int {
	return int(p.next) - 1
}
