//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package allocator

// Mmap is unavailable here, every Alloc fails with ErrUnsupported.
type Mmap struct{}

func NewMmap() *Mmap {
	return &Mmap{}
}

func (m *Mmap) Alloc(int) ([]byte, error) {
	return nil, ErrUnsupported
}

func (m *Mmap) Free([]byte) {}
