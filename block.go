package go_block_pool

type chunkState byte

const (
	stateFree chunkState = iota
	stateLent
)

// chunk is the pool side record of one allocation
type chunk struct {
	pool *Pool

	buf      []byte
	capacity int

	// gen is bumped on every release, so handles issued for an earlier
	// lease no longer match
	gen   uint64
	state chunkState

	// free list linkage, both nil while lent
	prev, next *chunk
}

// Block is a lease on pool memory, valid from Acquire until the matching
// Release. Copies of a Block share the lease: once any copy is released all
// of them go stale.
type Block struct {
	c   *chunk
	gen uint64
}

func (b Block) live() bool {
	return b.c != nil && b.c.state == stateLent && b.c.gen == b.gen
}

// Bytes returns the block storage, Cap() bytes long, or nil for a stale handle.
func (b Block) Bytes() []byte {
	if !b.live() {
		return nil
	}
	return b.c.buf
}

// Cap returns the allocated size of the block, header included.
func (b Block) Cap() int {
	if !b.live() {
		return 0
	}
	return b.c.capacity
}
