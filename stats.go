package poolmap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float32

	// Non-empty buckets and the length of the longest chain among them.
	UsedBuckets  int
	LongestChain int

	// Slots ever carved out of the pool, and those released and waiting for reuse.
	PoolSlots int
	PoolFree  int

	Resizes int
}
