package mem

import "sync"

// Pool recycles tracked slices of T. A Get satisfied from the pool costs
// nothing; only slices the pool has to grow fresh are recorded with the
// Tracker. Slices handed to Put stay live inside the pool, so they are never
// recorded as freed.
type Pool[T any] struct {
	t    *Tracker
	pool sync.Pool
}

// NewPool returns a Pool recording its allocations with t.
func NewPool[T any](t *Tracker) *Pool[T] {
	return &Pool[T]{t: t}
}

// Get returns a slice of n Ts, reusing a pooled one when it is big enough.
// Reused slices keep their previous contents.
func (p *Pool[T]) Get(n int) []T {
	v := p.pool.Get()
	if v == nil {
		return Make[T](p.t, n)
	}
	s := *(v.(*[]T))
	if cap(s) < n {
		return Make[T](p.t, n)
	}
	return s[:n]
}

// Put returns s to the pool for a later Get.
func (p *Pool[T]) Put(s []T) {
	p.pool.Put(&s)
}
