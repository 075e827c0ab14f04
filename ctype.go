package go_block_pool

// IPool lends blocks of at least the requested size and takes them back for reuse.
type IPool interface {
	// Acquire returns a block whose capacity is at least size bytes.
	Acquire(size int) (Block, error)

	// Release hands a block obtained from Acquire back to the pool.
	// The block and every copy of it must not be used afterwards.
	Release(b Block) error

	// Close drops every idle block and rejects further Acquire calls.
	Close()

	// utils

	Stats() Stats
}

// Allocator is the environment a pool draws fresh storage from and
// returns evicted storage to.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}
