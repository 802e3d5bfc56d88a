package poolmap

import "unsafe"

// maxPrime is the largest prime that fits in a uint64.
const maxPrime = 18446744073709551557

// NextPrime returns the smallest prime >= n, never less than 3.
// Returns 0 if that prime doesn't fit in a uint64.
func NextPrime(n uint64) uint64 {
	if n <= 3 {
		return 3
	}

	if n > maxPrime {
		return 0
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// IsPrime reports whether n is prime, using trial division by odd numbers up to √n.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}

	if n%2 == 0 {
		return n == 2
	}

	for i := uint64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// Estimates how many entries fit in the given memory size in bytes.
// Every entry costs one pool slot, one dense slot and one bucket head
// (the table grows before it holds as many entries as buckets).
func CapacityFromSize[K comparable, V any](size uintptr) int {
	perEntry := unsafe.Sizeof(entry[K, V]{}) + 2*unsafe.Sizeof(nilHandle)

	return int(size / perEntry)
}
