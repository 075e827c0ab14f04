package go_block_pool

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

type counters struct {
	hits          int64
	misses        int64
	flushes       int64
	evictedBlocks int64
	evictedBytes  int64
	failures      int64
}

// Stats is a point in time snapshot of a pool.
type Stats struct {
	MaxBytes  int
	HeldBytes int // IdleBytes + LentBytes
	IdleBytes int
	LentBytes int

	FreeBlocks int

	Hits          int64 // Acquire served from the free list
	Misses        int64 // Acquire that needed a fresh allocation
	Flushes       int64
	EvictedBlocks int64
	EvictedBytes  int64
	Failures      int64 // Acquire that returned an error after a miss
}

func (s Stats) String() string {
	return fmt.Sprintf("held=%s/%s idle=%s lent=%s free_blocks=%d hits=%d misses=%d flushes=%d evicted=%d(%s) failures=%d",
		humanize.IBytes(uint64(s.HeldBytes)),
		humanize.IBytes(uint64(s.MaxBytes)),
		humanize.IBytes(uint64(s.IdleBytes)),
		humanize.IBytes(uint64(s.LentBytes)),
		s.FreeBlocks,
		s.Hits,
		s.Misses,
		s.Flushes,
		s.EvictedBlocks,
		humanize.IBytes(uint64(s.EvictedBytes)),
		s.Failures,
	)
}
