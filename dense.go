package poolmap

import "slices"

// dense holds the handle of every live entry exactly once. Its order is the
// insertion and swap history, nothing more.
type dense []handle

func (d *dense) reserve(n int) {
	if n > len(*d) {
		*d = slices.Grow(*d, n-len(*d))
	}
}

// append adds h and returns its position.
func (d *dense) append(h handle) int {
	*d = append(*d, h)

	return len(*d) - 1
}

// removeAt drops the handle at position i by moving the last handle into it.
// When a handle was moved it's returned with ok set; its new position is i.
func (d *dense) removeAt(i int) (moved handle, ok bool) {
	s := *d
	last := len(s) - 1

	if i != last {
		moved = s[last]
		s[i] = moved
		ok = true
	}

	s[last] = nilHandle
	*d = s[:last]

	return moved, ok
}

func (d dense) len() int {
	return len(d)
}

func (d dense) at(i int) handle {
	return d[i]
}

func (d *dense) reset() {
	clear(*d)
	*d = (*d)[:0]
}
