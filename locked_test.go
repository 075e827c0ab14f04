package go_block_pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func Test_Locked_Concurrent_Acquire_Release(t *testing.T) {
	const workers = 8
	const iterations = 1000

	lp := NewLocked(newTestPool(t, 64*kiB))

	eg := errgroup.Group{}
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; go directive is 1.21
		eg.Go(func() error {
			for i := 0; i < iterations; i++ {
				size := (w*iterations + i) % 2048
				b, err := lp.Acquire(size)
				if errors.Is(err, ErrCapacityExceeded) {
					continue
				}
				if err != nil {
					return err
				}

				buf := b.Bytes()
				buf[0], buf[len(buf)-1] = byte(w), byte(i)
				if err := lp.Release(b); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	stats := lp.Stats()
	assert.Zero(t, stats.LentBytes)
	assert.Equal(t, stats.IdleBytes, stats.HeldBytes)
	assert.LessOrEqual(t, stats.HeldBytes, 64*kiB)
	assert.Equal(t, int64(workers*iterations), stats.Hits+stats.Misses)

	lp.Close()
	_, err := lp.Acquire(1)
	assert.ErrorIs(t, err, ErrPoolClosed)
}
