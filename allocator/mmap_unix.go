//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package allocator

import (
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// Mmap maps anonymous private pages outside the Go heap. Memory is returned
// to the operating system on Free, so the buffer must not be touched after it.
type Mmap struct{}

func NewMmap() *Mmap {
	return &Mmap{}
}

func (m *Mmap) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		// mmap rejects empty mappings
		return []byte{}, nil
	}

	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		zap.L().Error("Failed to mmap", zap.Int("size", size), zap.Error(err))
		return nil, err
	}
	return buf, nil
}

// Free unmaps buf. buf must be the exact slice returned by Alloc.
func (m *Mmap) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	if err := unix.Munmap(buf); err != nil {
		zap.L().Error("Failed to munmap", zap.Int("size", len(buf)), zap.Error(err))
	}
}
