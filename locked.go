package go_block_pool

import "sync"

// Locked serializes access to a Pool so several goroutines can share it.
type Locked struct {
	mu sync.Mutex
	p  *Pool
}

// NewLocked wraps p so every call holds a mutex for its duration.
func NewLocked(p *Pool) *Locked {
	return &Locked{p: p}
}

func (l *Locked) Acquire(size int) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Acquire(size)
}

func (l *Locked) Release(b Block) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Release(b)
}

func (l *Locked) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Close()
}

func (l *Locked) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p.Stats()
}

var _ IPool = (*Locked)(nil)
