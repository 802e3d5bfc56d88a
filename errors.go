package poolmap

import "errors"

var (
	// ErrKeyNotFound is returned by Ref for a key that is not in the map.
	ErrKeyNotFound = errors.New("poolmap: key not found")

	// ErrCapacityExceeded is returned when the table would have to grow
	// past its maximum capacity. The table is left unchanged.
	ErrCapacityExceeded = errors.New("poolmap: capacity exceeded")

	ErrEndIterator   = errors.New("poolmap: end iterator")
	ErrStaleIterator = errors.New("poolmap: stale iterator")
)
