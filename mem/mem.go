// package mem tracks the bytes allocated and freed through it. The totals
// are advisory: nothing stops a caller allocating storage behind the
// tracker's back, it just won't be counted.
package mem

import (
	"sync"
	"unsafe"
)

// Tracker counts bytes allocated and freed. Both totals only ever grow until
// Reset. The zero value is ready to use and all methods are safe for
// concurrent use, though the lock is only ever held for the counter update
// and the allocation itself.
type Tracker struct {
	mu        sync.Mutex
	allocated uint64
	freed     uint64
}

// Stats is a consistent snapshot of a Tracker's totals.
type Stats struct {
	Allocated uint64
	Freed     uint64
}

// Alloc records n bytes as allocated.
func (t *Tracker) Alloc(n uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.allocated += n
}

// Free records n bytes as freed.
func (t *Tracker) Free(n uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.freed += n
}

// Reset zeroes both totals. Resetting while storage from a previous phase is
// still live is allowed, but then the totals no longer describe a single
// phase; that discipline is the caller's.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.allocated = 0
	t.freed = 0
}

// Stats returns a snapshot of both totals.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{Allocated: t.allocated, Freed: t.freed}
}

// sizeof is unsafe.Sizeof for a type parameter.
func sizeof[T any]() uint64 {
	var z T
	return uint64(unsafe.Sizeof(z))
}

// Make allocates a slice of n Ts, recording n*sizeof(T) bytes with t.
// Exhaustion of the underlying memory is fatal; Make never returns a partial
// allocation.
func Make[T any](t *Tracker, n int) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.allocated += uint64(n) * sizeof[T]()
	return make([]T, n)
}

// Release records the bytes of s as freed and drops the reference; the
// runtime reclaims the storage whenever it likes. Callers must not keep
// using s afterwards.
func Release[T any](t *Tracker, s []T) {
	t.Free(uint64(len(s)) * sizeof[T]())
}
