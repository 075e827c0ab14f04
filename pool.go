package go_block_pool

import (
	"fmt"
	"math"

	"github.com/datnguyenzzz/nogodb/lib/go-block-pool/allocator"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const (
	kiB = 1024
	miB = 1024 * kiB
)

// Pool caches released blocks and lends them out again for requests that fit
// within the tolerance window. It accounts for every byte it has allocated,
// idle or lent, and flushes all idle blocks when a fresh allocation would
// push that total over maxBytes.
//
// A Pool is not safe for concurrent use. Wrap it with NewLocked to share it.
type Pool struct {
	opts     options
	maxBytes int

	free freeList

	// idleBytes is the total capacity of chunks in the free list.
	// lentBytes is the total capacity of chunks currently lent to callers.
	idleBytes int
	lentBytes int

	stats  counters
	closed bool
}

// New creates a pool that holds at most maxBytes of idle and lent blocks.
func New(maxBytes int, opts ...OptionFn) (*Pool, error) {
	p := &Pool{
		opts:     defaultOptions,
		maxBytes: maxBytes,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.opts.logger == nil {
		p.opts.logger = zap.L()
	}
	if p.opts.allocator == nil {
		p.opts.allocator = allocator.NewHeap()
	}

	if err := p.opts.validate(maxBytes); err != nil {
		p.opts.logger.Error("Invalid pool options", zap.Error(err))
		return nil, err
	}

	p.free.init()
	return p, nil
}

// Acquire returns a block whose capacity is at least size bytes. A cached
// block is reused when its capacity is within the tolerance window,
// otherwise a new one of size+headerSize bytes is allocated.
func (p *Pool) Acquire(size int) (Block, error) {
	if p.closed {
		return Block{}, ErrPoolClosed
	}
	if size < 0 {
		return Block{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	// locate first, unlink afterwards
	if c := p.free.find(size, p.opts.tolerance); c != nil {
		p.free.remove(c)
		p.idleBytes -= c.capacity
		p.lentBytes += c.capacity
		p.stats.hits++

		if p.opts.zeroOnReuse {
			clear(c.buf)
		}
		c.state = stateLent

		p.opts.logger.Debug("Reuse cached block",
			zap.Int("size", size),
			zap.Int("capacity", c.capacity),
		)
		return Block{c: c, gen: c.gen}, nil
	}

	p.stats.misses++
	allocSize, ok := p.allocSize(size)
	if !ok || !p.fits(allocSize) {
		p.flush()
		if !ok || !p.fits(allocSize) {
			p.stats.failures++
			p.opts.logger.Warn("Pool capacity exceeded",
				zap.Int("size", size),
				zap.Int("alloc_size", allocSize),
				zap.Int("held_bytes", p.heldBytes()),
				zap.Int("max_bytes", p.maxBytes),
			)
			return Block{}, fmt.Errorf("%w: need %d bytes for a %d bytes request, holding %d of %d",
				ErrCapacityExceeded, allocSize, size, p.heldBytes(), p.maxBytes)
		}
	}

	buf, err := p.opts.allocator.Alloc(allocSize)
	if err != nil {
		p.stats.failures++
		p.opts.logger.Error("Failed to allocate block", zap.Int("alloc_size", allocSize), zap.Error(err))
		return Block{}, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}

	c := &chunk{
		pool:     p,
		buf:      buf,
		capacity: allocSize,
		state:    stateLent,
	}
	p.lentBytes += allocSize

	p.opts.logger.Debug("Allocate new block",
		zap.Int("size", size),
		zap.Int("capacity", allocSize),
		zap.Int("held_bytes", p.heldBytes()),
	)
	return Block{c: c, gen: c.gen}, nil
}

// Release appends the block to the free list for later reuse. Releasing a
// zero Block or a block from another pool yields ErrForeignBlock, releasing a
// stale handle yields ErrBlockReleased.
func (p *Pool) Release(b Block) error {
	c := b.c
	if c == nil || c.pool != p {
		p.opts.logger.Warn("Release a block that does not belong to the pool")
		return ErrForeignBlock
	}
	if c.state != stateLent || c.gen != b.gen {
		p.opts.logger.Warn("Release a stale block", zap.Int("capacity", c.capacity))
		return ErrBlockReleased
	}

	c.gen++
	c.state = stateFree
	p.lentBytes -= c.capacity

	if p.closed {
		p.opts.allocator.Free(c.buf)
		c.buf = nil
		return nil
	}

	p.free.pushBack(c)
	p.idleBytes += c.capacity
	return nil
}

// Close returns every idle block to the allocator. Blocks still lent out are
// freed when they are released.
func (p *Pool) Close() {
	if p.closed {
		return
	}
	blocks, bytes := p.drain()
	p.closed = true

	p.opts.logger.Info("Pool closed",
		zap.Int("freed_blocks", blocks),
		zap.String("freed_bytes", humanize.IBytes(uint64(bytes))),
		zap.Int("lent_bytes", p.lentBytes),
	)
}

// Stats returns a snapshot of the pool accounting and counters.
func (p *Pool) Stats() Stats {
	return Stats{
		MaxBytes:      p.maxBytes,
		HeldBytes:     p.heldBytes(),
		IdleBytes:     p.idleBytes,
		LentBytes:     p.lentBytes,
		FreeBlocks:    p.free.len,
		Hits:          p.stats.hits,
		Misses:        p.stats.misses,
		Flushes:       p.stats.flushes,
		EvictedBlocks: p.stats.evictedBlocks,
		EvictedBytes:  p.stats.evictedBytes,
		Failures:      p.stats.failures,
	}
}

// flush evicts the whole free list. There is no partial eviction.
func (p *Pool) flush() {
	blocks, bytes := p.drain()
	p.stats.flushes++
	p.stats.evictedBlocks += int64(blocks)
	p.stats.evictedBytes += int64(bytes)

	p.opts.logger.Info("Flush free list",
		zap.Int("blocks", blocks),
		zap.String("bytes", humanize.IBytes(uint64(bytes))),
		zap.Int("max_bytes", p.maxBytes),
	)
}

// drain frees free list chunks oldest first until the list is empty
func (p *Pool) drain() (blocks, bytes int) {
	for c := p.free.front(); c != nil; c = p.free.front() {
		p.free.remove(c)
		p.idleBytes -= c.capacity

		p.opts.allocator.Free(c.buf)
		c.buf = nil

		blocks++
		bytes += c.capacity
	}
	return blocks, bytes
}

func (p *Pool) heldBytes() int {
	return p.idleBytes + p.lentBytes
}

// fits reports whether n more bytes stay within maxBytes
func (p *Pool) fits(n int) bool {
	return n <= p.maxBytes-p.heldBytes()
}

func (p *Pool) allocSize(size int) (int, bool) {
	if size > math.MaxInt-p.opts.headerSize {
		return math.MaxInt, false
	}
	return size + p.opts.headerSize, true
}

var _ IPool = (*Pool)(nil)
