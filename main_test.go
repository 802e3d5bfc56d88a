package poolmap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireConsistent walks both the bucket chains and the dense array and
// checks that they describe the same set of live entries.
func requireConsistent[K comparable, V any](t testing.TB, tt *table[K, V]) {
	t.Helper()

	require.True(t, IsPrime(tt.capacity), "capacity %d is not prime", tt.capacity)
	require.Len(t, tt.buckets, int(tt.capacity))
	require.Less(t, uint64(tt.dense.len()), tt.capacity)
	require.Equal(t, tt.dense.len(), tt.pool.live)

	for i := 0; i < tt.dense.len(); i++ {
		h := tt.dense.at(i)
		require.NotEqual(t, nilHandle, h)
		require.Equal(t, i, tt.pool.at(h).index, "dense slot %d", i)
	}

	chained := 0
	for b, head := range tt.buckets {
		prev := nilHandle
		for h := head; h != nilHandle; h = tt.pool.at(h).next {
			e := tt.pool.at(h)

			require.Equal(t, prev, e.prev, "bucket %d", b)
			require.Equal(t, uint64(b), tt.hashFunc(e.key)%tt.capacity, "key %v in wrong bucket", e.key)
			require.Equal(t, h, tt.dense.at(e.index))

			prev = h
			chained++
		}
	}

	require.Equal(t, tt.dense.len(), chained)
}

func genKeys[K comparable](start, end int) []K {
	var keys any

	switch any(*new(K)).(type) {
	case uint32:
		ks := make([]uint32, end-start)
		for i := range ks {
			ks[i] = uint32(start + i)
		}
		keys = ks
	case uint64:
		ks := make([]uint64, end-start)
		for i := range ks {
			ks[i] = uint64(start + i)
		}
		keys = ks
	case string:
		ks := make([]string, end-start)
		for i := range ks {
			ks[i] = strconv.Itoa(start + i)
		}
		keys = ks
	default:
		panic("not reached")
	}

	return keys.([]K)
}
