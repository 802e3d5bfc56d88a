package poolmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K any] func(K) uint64

type EqualFunc[K any] func(a, b K) bool

// Hasher binds a hash function and the equivalence relation it agrees with.
// If Equal(a, b) then Hash(a) == Hash(b) must hold.
type Hasher[K any] interface {
	Hash(K) uint64
	Equal(a, b K) bool
}

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

func DefaultEqualFunc[K comparable](a, b K) bool {
	return a == b
}

// XXHashString hashes string keys with xxhash64. Unlike the default hash
// function it's unseeded, so hashes are stable across processes.
func XXHashString[K ~string](k K) uint64 {
	return xxhash.Sum64String(string(k))
}

// StringHasher is a Hasher for string-like keys backed by xxhash64.
type StringHasher[K ~string] struct{}

func (StringHasher[K]) Hash(k K) uint64 { return XXHashString(k) }
func (StringHasher[K]) Equal(a, b K) bool { return a == b }
