package pool

import (
	"sync"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool      sync.Pool
	maxRetain int
}

// NewBufferPool creates a new buffer pool with buffers of the specified initial capacity.
// Buffers that grew beyond maxRetain bytes are dropped instead of being returned to the pool.
// A maxRetain of 0 keeps every buffer.
func NewBufferPool(size, maxRetain int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		maxRetain: maxRetain,
	}
}

// Get retrieves an empty buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	buffer := bp.pool.Get().(*[]byte)
	*buffer = (*buffer)[:0]
	return buffer
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	if buffer == nil {
		return
	}
	if bp.maxRetain > 0 && cap(*buffer) > bp.maxRetain {
		return
	}
	// Reset buffer length but keep capacity
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}
