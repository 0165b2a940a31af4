package simd

import (
	"fmt"
	"sync"
)

// RegisterPool recycles backing registers of one exact (kind, lanes)
// shape. Size-exact requests route through the alignment-correct
// Alloc/Dealloc path; a Put of any other size is handed back to the
// default allocator (the garbage collector) instead of being pooled.
type RegisterPool struct {
	shape RegShape
	pool  sync.Pool
}

// NewRegisterPool returns a pool for registers of the given shape.
func NewRegisterPool(kind Kind, lanes int) (*RegisterPool, error) {
	shape, err := ShapeOf(kind, lanes)
	if err != nil {
		return nil, fmt.Errorf("simd: register pool: %w", err)
	}
	return &RegisterPool{shape: shape}, nil
}

// Shape returns the register shape this pool serves.
func (p *RegisterPool) Shape() RegShape {
	return p.shape
}

// Get returns a zeroed register of the pool's shape, reusing a recycled
// one when available.
func (p *RegisterPool) Get() ([]byte, error) {
	if buf, ok := p.pool.Get().(*[]byte); ok {
		clear(*buf)
		return *buf, nil
	}
	return Alloc(p.shape.Size, p.shape.Align)
}

// Put recycles a register previously obtained from Get. Buffers of any
// other size or misaligned buffers are ignored and left to the default
// allocator.
func (p *RegisterPool) Put(buf []byte) {
	if len(buf) != p.shape.Size || !Aligned(buf, p.shape.Align) {
		return
	}
	// Pointer indirection keeps the slice header off the heap on Put.
	p.pool.Put(&buf)
}
