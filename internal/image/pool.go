package image

import "sync"

// Pool is a thread-safe pool of pixel byte buffers.
//
// Buffers are grouped by length, so a pool serving one canvas size hands
// back the same few allocations over and over. This keeps scratch copies,
// such as the working buffer of a flood fill, off the garbage collector.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]uint8
	maxSize int // max buffers per bucket
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// length. A non-positive maxPerBucket means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]uint8),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n bytes. A reused buffer is not
// cleared; callers are expected to overwrite it.
func (p *Pool) Get(n int) []uint8 {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]uint8, n)
}

// Put returns buf to the pool. The caller must not use buf afterwards.
// Empty buffers and buffers beyond the bucket capacity are dropped.
func (p *Pool) Put(buf []uint8) {
	n := len(buf)
	if n == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// Len returns the number of buffers held for length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

var defaultPool = NewPool(4)

// GetBuffer takes an n-byte buffer from the package pool.
func GetBuffer(n int) []uint8 {
	return defaultPool.Get(n)
}

// PutBuffer returns a buffer to the package pool.
func PutBuffer(buf []uint8) {
	defaultPool.Put(buf)
}
