package scratch

import (
	"sync"
	"sync/atomic"
)

// maxPooledCap bounds the backing arrays kept for reuse. Buffers that grew
// past it are left to the garbage collector on Release.
const maxPooledCap = 1024

// Stats is a snapshot of a pool's counters.
type Stats struct {
	Acquired  uint64 // buffers handed out by Acquire
	Allocated uint64 // backing arrays created because the pool had none large enough
	Grown     uint64 // reallocations performed by Append
	Released  uint64 // buffers returned to the pool
	Discarded uint64 // buffers dropped on Release because they were oversized
}

// Pool hands out reusable Buffers of T.
// It is safe for concurrent use; no ordering is guaranteed between callers.
type Pool[T any] struct {
	defaultCap int
	pool       sync.Pool

	acquired  atomic.Uint64
	allocated atomic.Uint64
	grown     atomic.Uint64
	released  atomic.Uint64
	discarded atomic.Uint64
}

// NewPool creates a pool whose fresh buffers start with defaultCap slots.
func NewPool[T any](defaultCap int) *Pool[T] {
	if defaultCap <= 0 {
		defaultCap = 8
	}
	return &Pool[T]{defaultCap: defaultCap}
}

// Acquire returns an empty buffer with room for at least capacity items.
// The caller must Release it when done, typically with defer.
func (p *Pool[T]) Acquire(capacity int) *Buffer[T] {
	p.acquired.Add(1)
	if capacity < p.defaultCap {
		capacity = p.defaultCap
	}

	b, _ := p.pool.Get().(*Buffer[T])
	if b == nil {
		b = &Buffer[T]{}
	}
	b.pool = p
	if cap(b.items) < capacity {
		p.allocated.Add(1)
		b.items = make([]T, 0, capacity)
	}
	return b
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Acquired:  p.acquired.Load(),
		Allocated: p.allocated.Load(),
		Grown:     p.grown.Load(),
		Released:  p.released.Load(),
		Discarded: p.discarded.Load(),
	}
}

func (p *Pool[T]) put(b *Buffer[T]) {
	if cap(b.items) > maxPooledCap {
		p.discarded.Add(1)
		return
	}
	p.released.Add(1)
	p.pool.Put(b)
}

// Buffer is an append-only working slice borrowed from a Pool.
// A Buffer must not be used after Release.
type Buffer[T any] struct {
	pool  *Pool[T]
	items []T
}

// Append adds item, doubling the backing array when it is full.
func (b *Buffer[T]) Append(item T) {
	if len(b.items) == cap(b.items) {
		b.grow()
	}
	b.items = append(b.items, item)
}

func (b *Buffer[T]) grow() {
	n := cap(b.items) * 2
	if n == 0 {
		n = b.pool.defaultCap
	}
	next := make([]T, len(b.items), n)
	copy(next, b.items)
	b.items = next
	b.pool.grown.Add(1)
}

// Len returns the number of items appended so far.
func (b *Buffer[T]) Len() int { return len(b.items) }

// At returns the item at index i.
func (b *Buffer[T]) At(i int) T { return b.items[i] }

// Set replaces the item at index i.
func (b *Buffer[T]) Set(i int, item T) { b.items[i] = item }

// Items returns a view of the used portion. The view is only valid until
// Release and must not be retained.
func (b *Buffer[T]) Items() []T { return b.items }

// ToSlice copies the used portion into a new, exactly sized slice.
// It returns nil when the buffer is empty.
func (b *Buffer[T]) ToSlice() []T {
	if len(b.items) == 0 {
		return nil
	}
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// Release clears the buffer and returns its backing array to the pool.
func (b *Buffer[T]) Release() {
	clear(b.items)
	b.items = b.items[:0]
	p := b.pool
	b.pool = nil
	if p != nil {
		p.put(b)
	}
}
