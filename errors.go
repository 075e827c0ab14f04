package go_block_pool

import "errors"

var (
	ErrCapacityExceeded = errors.New("go-block-pool: capacity exceeded")
	ErrInvalidSize      = errors.New("go-block-pool: invalid size")
	ErrAllocFailed      = errors.New("go-block-pool: allocation failed")
	ErrPoolClosed       = errors.New("go-block-pool: pool is closed")
	ErrForeignBlock     = errors.New("go-block-pool: block does not belong to this pool")
	ErrBlockReleased    = errors.New("go-block-pool: block is already released")
	ErrInvalidOption    = errors.New("go-block-pool: invalid option")
)
