// Package pool provides a pooled byte buffer for the Writer's output
// path, adapted from mebo's internal/pool for chainpack's single-frame
// (rather than columnar-blob) output shape.
package pool

import "sync"

// DefaultSize is a suggested defaultSize for NewByteBufferPool — large
// enough for most single ChainPack values without a reallocation. A
// pool's fresh buffers start at the size that pool was created with.
const DefaultSize = 256

// MaxThreshold is the capacity above which a returned ByteBuffer is
// discarded rather than retained, to avoid one oversized value's buffer
// inflating the pool for every subsequent caller.
const MaxThreshold = 1024 * 64

// ByteBuffer is a growable byte slice wrapper reused across Writer calls.
type ByteBuffer struct {
	B []byte
}

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// ByteBufferPool pools ByteBuffer instances.
type ByteBufferPool struct {
	pool sync.Pool
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize.
func NewByteBufferPool(defaultSize int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return &ByteBuffer{B: make([]byte, 0, defaultSize)}
			},
		},
	}
}

// Get retrieves a ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool. Oversized buffers are dropped
// rather than retained.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if cap(bb.B) > MaxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}
