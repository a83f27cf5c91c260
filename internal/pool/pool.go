// Package pool recycles slice buffers between parses.
package pool

import "sync"

// Pool is a typed sync.Pool with an optional reset hook run on Put
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool backed by factory
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any { return factory() },
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T) //nolint:errcheck // only *T is ever stored
}

// Put returns obj to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.pool.Put(obj)
}

// Slices pools []E buffers in capacity buckets. Buckets start at minCap and
// double up to maxCap, which matches geometric slice growth from minCap.
type Slices[E any] struct {
	buckets []int
	pools   []*Pool[[]E]
}

// NewSlices creates bucketed pools for capacities minCap, 2*minCap, ... up
// to maxCap.
func NewSlices[E any](minCap, maxCap int) *Slices[E] {
	if minCap <= 0 {
		minCap = 1
	}
	s := &Slices[E]{}
	for c := minCap; c <= maxCap; c *= 2 {
		capacity := c
		s.buckets = append(s.buckets, capacity)
		s.pools = append(s.pools, NewPoolWithReset(
			func() *[]E {
				buf := make([]E, 0, capacity)
				return &buf
			},
			func(buf *[]E) {
				clear((*buf)[:cap(*buf)])
				*buf = (*buf)[:0]
			},
		))
	}
	return s
}

// Get returns an empty buffer with room for at least n elements. Requests
// above the largest bucket are allocated directly.
func (s *Slices[E]) Get(n int) []E {
	for i, b := range s.buckets {
		if b >= n {
			return *s.pools[i].Get()
		}
	}
	return make([]E, 0, n)
}

// Put hands buf back for reuse. Only buffers whose capacity is exactly a
// bucket size are kept; the caller must not touch buf afterwards.
func (s *Slices[E]) Put(buf []E) {
	c := cap(buf)
	for i, b := range s.buckets {
		if b == c {
			s.pools[i].Put(&buf)
			return
		}
		if b > c {
			return
		}
	}
}

// Buckets reports the pooled capacities
func (s *Slices[E]) Buckets() []int { return s.buckets }
