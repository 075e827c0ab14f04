package go_block_pool

import (
	"testing"

	"github.com/datnguyenzzz/nogodb/lib/go-block-pool/allocator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func Test_New_Defaults(t *testing.T) {
	p := newTestPool(t, 1*miB)

	assert.Equal(t, 64, p.opts.tolerance)
	assert.Equal(t, 8, p.opts.headerSize)
	assert.IsType(t, &allocator.Heap{}, p.opts.allocator)
	assert.NotNil(t, p.opts.logger)
	assert.False(t, p.opts.zeroOnReuse)
	assert.Equal(t, 1*miB, p.Stats().MaxBytes)
}

func Test_New_With_Options(t *testing.T) {
	logger := zap.NewNop()
	mmap := allocator.NewMmap()
	p := newTestPool(t, 1*kiB,
		WithTolerance(16),
		WithHeaderSize(0),
		WithAllocator(mmap),
		WithLogger(logger),
		WithZeroOnReuse(true),
	)

	assert.Equal(t, 16, p.opts.tolerance)
	assert.Zero(t, p.opts.headerSize)
	assert.Same(t, mmap, p.opts.allocator)
	assert.Same(t, logger, p.opts.logger)
	assert.True(t, p.opts.zeroOnReuse)
}

func Test_New_Invalid_Options(t *testing.T) {
	p, err := New(0, WithTolerance(0), WithHeaderSize(-1))
	require.Error(t, err)
	assert.Nil(t, p)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)
	for _, e := range errs {
		assert.ErrorIs(t, e, ErrInvalidOption)
	}

	_, err = New(-5)
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Len(t, multierr.Errors(err), 1)
}

func Test_Header_Size_Is_Charged(t *testing.T) {
	p := newTestPool(t, 1*kiB, WithHeaderSize(32))

	b, err := p.Acquire(100)
	require.NoError(t, err)
	assert.Equal(t, 132, b.Cap())
	assert.Equal(t, 132, p.Stats().HeldBytes)
}
