package radixmap

import "iter"

// Map is a sorted key→value container over a fixed-depth 16-ary radix
// trie. Lookup, insertion and deletion visit exactly 2*Width(key) levels;
// in-order traversal needs no comparisons. The zero Map is not usable:
// construct with New or NewWithAllocator.
//
// Map is not safe for concurrent use.
type Map[K, V any] struct {
	ord   Ordering[K]
	alloc Allocator[V]

	empty    *node[V]
	root     slot[V]
	count    int
	maxDepth int
	maxKey   uint64
}

// New builds an empty Map ordered by ord, with per-element heap
// allocation. It panics if ord reports a width outside 1..8 bytes.
func New[K, V any](ord Ordering[K]) *Map[K, V] {
	return NewWithAllocator[K, V](ord, heap[V]{})
}

// NewWithAllocator is New with explicit control over leaf value storage.
func NewWithAllocator[K, V any](ord Ordering[K], alloc Allocator[V]) *Map[K, V] {
	w := ord.Width()
	if w < 1 || w > 8 {
		panic("radixmap: ordering width must be 1..8 bytes")
	}
	m := &Map[K, V]{
		ord:      ord,
		alloc:    alloc,
		empty:    newSentinel[V](),
		maxDepth: 2 * w,
		maxKey:   maxRadix(w),
	}
	m.root.children = m.empty
	return m
}

func (m *Map[K, V]) radix(k K) uint64 {
	return m.ord.Apply(k) & m.maxKey
}

// seek builds the descent path for rk without allocating. The result
// refers to the element for rk when one exists (targetValid); otherwise
// its depth marks the first absent level, ready for a successor or
// predecessor seek.
func (m *Map[K, V]) seek(rk uint64) Iterator[K, V] {
	it := Iterator[K, V]{m: m, key: rk}
	it.stack[m.maxDepth-1] = &m.root
	it.fillStack()
	for it.depth = m.maxDepth - 1; it.depth > 0 && !m.slotEmpty(it.stack[it.depth]); it.depth-- {
	}
	return it
}

func (m *Map[K, V]) lowerBoundRadix(rk uint64) Iterator[K, V] {
	it := m.seek(rk)
	if !it.targetValid() {
		it.increment()
	}
	return it
}

// Len returns the number of elements.
func (m *Map[K, V]) Len() int { return m.count }

// Empty reports whether the Map holds no elements.
func (m *Map[K, V]) Empty() bool { return m.count == 0 }

// Contains reports whether an element exists for k.
func (m *Map[K, V]) Contains(k K) bool {
	return m.lookup(m.radix(k)) != nil
}

// Get returns the value stored for k, or the zero value and false when k
// is absent.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if v := m.lookup(m.radix(k)); v != nil {
		return *v, true
	}
	var zero V
	return zero, false
}

// At returns a reference to the value stored for k, or ErrKeyNotFound
// when k is absent. It never mutates the Map.
func (m *Map[K, V]) At(k K) (*V, error) {
	if v := m.lookup(m.radix(k)); v != nil {
		return v, nil
	}
	return nil, ErrKeyNotFound
}

// Ref returns a mutable reference to the value for k, inserting a
// zero-valued element first when k is absent.
func (m *Map[K, V]) Ref(k K) *V {
	rk := m.radix(k)
	if v := m.lookup(rk); v != nil {
		return v
	}
	return m.place(rk, nil)
}

// Insert stores v for k only when k is absent, leaving any existing value
// untouched. It returns the iterator at k's element and whether the
// insertion happened.
func (m *Map[K, V]) Insert(k K, v V) (Iterator[K, V], bool) {
	rk := m.radix(k)
	added := false
	if m.lookup(rk) == nil {
		m.place(rk, func() V { return v })
		added = true
	}
	return m.findRadix(rk), added
}

// InsertWith is Insert with deferred construction: construct runs only
// when an insertion actually happens.
func (m *Map[K, V]) InsertWith(k K, construct func() V) (Iterator[K, V], bool) {
	rk := m.radix(k)
	added := false
	if m.lookup(rk) == nil {
		m.place(rk, construct)
		added = true
	}
	return m.findRadix(rk), added
}

// InsertAll inserts every element of other whose key is absent here.
func (m *Map[K, V]) InsertAll(other *Map[K, V]) {
	for k, v := range other.All() {
		m.Insert(k, v)
	}
}

// Find returns the iterator at k's element, or End when k is absent.
func (m *Map[K, V]) Find(k K) Iterator[K, V] {
	return m.findRadix(m.radix(k))
}

func (m *Map[K, V]) findRadix(rk uint64) Iterator[K, V] {
	it := m.seek(rk)
	if !it.targetValid() {
		return m.End()
	}
	return it
}

// LowerBound returns the iterator at the first element whose radix key is
// >= the transformed k, or End when no such element exists.
func (m *Map[K, V]) LowerBound(k K) Iterator[K, V] {
	return m.lowerBoundRadix(m.radix(k))
}

// UpperBound returns the iterator at the first element whose radix key is
// > the transformed k, or End when no such element exists.
func (m *Map[K, V]) UpperBound(k K) Iterator[K, V] {
	it := m.seek(m.radix(k))
	it.increment()
	return it
}

// Erase removes the element for k, reporting whether one was removed.
func (m *Map[K, V]) Erase(k K) bool {
	it := m.seek(m.radix(k))
	if !it.targetValid() {
		return false
	}
	it.eraseElem()
	m.count--
	return true
}

// EraseAt removes the element it refers to and returns the iterator at the
// successor. It panics when it does not refer to an element of this Map.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	if it.m != m || !it.Valid() {
		panic("radixmap: EraseAt on non-dereferenceable iterator")
	}
	it.eraseElem()
	m.count--
	it.increment()
	return it
}

// EraseRange removes every element in [first, last). last must be first or
// a position reachable from first by successor steps.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) {
	for !first.Equal(last) {
		first = m.EraseAt(first)
	}
}

// Clear releases every element and resets the root to the sentinel.
func (m *Map[K, V]) Clear() {
	m.releaseTree(&m.root, m.maxDepth)
	m.root = slot[V]{children: m.empty}
	m.count = 0
}

// Begin returns the iterator at the smallest key, or End when the Map is
// empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return m.lowerBoundRadix(0)
}

// End returns the past-the-end position.
func (m *Map[K, V]) End() Iterator[K, V] {
	it := Iterator[K, V]{m: m, over: pastEnd, depth: m.maxDepth}
	it.stack[m.maxDepth-1] = &m.root
	return it
}

// RBegin returns the reverse iterator at the largest key, or REnd when the
// Map is empty.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	it := m.seek(m.maxKey)
	if !it.targetValid() {
		it.decrement()
	}
	return ReverseIterator[K, V]{fwd: it}
}

// REnd returns the before-the-begin position.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	it := Iterator[K, V]{m: m, over: beforeBegin, depth: m.maxDepth}
	it.stack[m.maxDepth-1] = &m.root
	return ReverseIterator[K, V]{fwd: it}
}

// All returns a range-over-func sequence of the elements in ascending key
// order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key(), *it.Value()) {
				return
			}
		}
	}
}

// Backward returns a range-over-func sequence of the elements in
// descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.RBegin(); it.Valid(); it.Next() {
			if !yield(it.Key(), *it.Value()) {
				return
			}
		}
	}
}

// Clone returns a Map with the same ordering and allocator holding copies
// of every element. No trie structure is shared.
func (m *Map[K, V]) Clone() *Map[K, V] {
	n := NewWithAllocator[K, V](m.ord, m.alloc)
	for k, v := range m.All() {
		n.Insert(k, v)
	}
	return n
}
