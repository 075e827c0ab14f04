package go_block_pool

import "go.uber.org/zap"

// freeList keeps idle chunks in release order.
//
//	dummy root <--> oldest release <--> ... <--> newest release
//	^                                                        ^
//	|                                                        |
//	+--------------------------------------------------------+
type freeList struct {
	root chunk
	len  int
}

func (l *freeList) init() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

// pushBack links c after the newest chunk
func (l *freeList) pushBack(c *chunk) {
	last := l.root.prev
	c.prev = last
	c.next = &l.root
	last.next = c
	l.root.prev = c
	l.len++
}

// front returns the oldest chunk, nil when empty
func (l *freeList) front() *chunk {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// remove unlinks c using its own links.
//
//	Caller must ensure c is currently in the list
func (l *freeList) remove(c *chunk) {
	if c.prev == nil || c.next == nil {
		msg := "remove a chunk that is not in the free list"
		zap.L().Error(msg, zap.Int("capacity", c.capacity))
		panic(msg)
	}
	c.prev.next = c.next
	c.next.prev = c.prev
	c.prev = nil
	c.next = nil
	l.len--
}

// find returns the first chunk, oldest first, whose capacity lies in
// [size, size+tolerance). It does not modify the list.
func (l *freeList) find(size, tolerance int) *chunk {
	for c := l.root.next; c != &l.root; c = c.next {
		// c.capacity-size cannot overflow once c.capacity >= size
		if c.capacity >= size && c.capacity-size < tolerance {
			return c
		}
	}
	return nil
}
