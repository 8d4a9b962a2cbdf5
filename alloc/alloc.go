// Package alloc provides implementations of the radixmap Allocator
// contract: the collaborator that owns one value allocation per occupied
// key.
package alloc

import (
	"sync"

	radixmap "github.com/forestrie/go-radixmap"
)

var (
	_ radixmap.Allocator[int] = Heap[int]{}
	_ radixmap.Allocator[int] = (*Pool[int])(nil)
	_ radixmap.Allocator[int] = (*Counting[int])(nil)
)

// Heap is the trivial allocator: every element is an independent Go heap
// allocation, released to the collector once freed and unreferenced.
type Heap[V any] struct{}

func (Heap[V]) Alloc() *V { return new(V) }
func (Heap[V]) Free(*V)   {}

// Pool recycles element storage through a sync.Pool. Freed values are
// zeroed before pooling so Alloc always returns zero-valued storage. The
// zero Pool is ready to use.
type Pool[V any] struct {
	pool sync.Pool
}

func (p *Pool[V]) Alloc() *V {
	if v, ok := p.pool.Get().(*V); ok {
		return v
	}
	return new(V)
}

func (p *Pool[V]) Free(v *V) {
	var zero V
	*v = zero
	p.pool.Put(v)
}

// Counting wraps another allocator and tracks the number of live
// allocations, for tests and leak diagnostics. A nil Inner delegates to
// Heap.
type Counting[V any] struct {
	Inner radixmap.Allocator[V]
	Live  int
}

func (c *Counting[V]) Alloc() *V {
	c.Live++
	if c.Inner == nil {
		return new(V)
	}
	return c.Inner.Alloc()
}

func (c *Counting[V]) Free(v *V) {
	c.Live--
	if c.Inner != nil {
		c.Inner.Free(v)
	}
}
