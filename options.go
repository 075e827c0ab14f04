package go_block_pool

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type OptionFn func(p *Pool)

type options struct {
	// tolerance is the maximum excess capacity a free block may have over a
	// request and still be handed out for it. A block of capacity c matches a
	// request of n bytes when n <= c < n+tolerance.
	tolerance int

	// headerSize is the fixed per-block overhead added to every fresh
	// allocation and charged against the pool ceiling.
	headerSize int

	// allocator is where fresh blocks come from and where flushed blocks go.
	// nil means the Go heap.
	allocator Allocator

	// logger nil means zap.L() at construction time.
	logger *zap.Logger

	// zeroOnReuse clears a recycled block before lending it again.
	// Freshly allocated blocks are always zeroed.
	zeroOnReuse bool
}

var defaultOptions = options{
	tolerance:   64,
	headerSize:  8, // one machine word holding the capacity
	allocator:   nil,
	logger:      nil,
	zeroOnReuse: false,
}

func WithTolerance(tolerance int) OptionFn {
	return func(p *Pool) {
		p.opts.tolerance = tolerance
	}
}

func WithHeaderSize(headerSize int) OptionFn {
	return func(p *Pool) {
		p.opts.headerSize = headerSize
	}
}

func WithAllocator(allocator Allocator) OptionFn {
	return func(p *Pool) {
		p.opts.allocator = allocator
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(p *Pool) {
		p.opts.logger = logger
	}
}

func WithZeroOnReuse(zeroOnReuse bool) OptionFn {
	return func(p *Pool) {
		p.opts.zeroOnReuse = zeroOnReuse
	}
}

// validate reports every bad setting at once
func (o *options) validate(maxBytes int) error {
	var err error
	if maxBytes <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: max bytes must be positive, got %d", ErrInvalidOption, maxBytes))
	}
	if o.tolerance <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: tolerance must be positive, got %d", ErrInvalidOption, o.tolerance))
	}
	if o.headerSize < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: header size must not be negative, got %d", ErrInvalidOption, o.headerSize))
	}
	return err
}
