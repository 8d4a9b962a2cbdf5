package radixmap

// Overflow marker values. A parked iterator sits past the last
// representable key (pastEnd) or before the first (beforeBegin); 0 means
// the key cursor is inside the representable range.
const (
	pastEnd     = int8(1)
	beforeBegin = int8(-1)
)

// Iterator is a bidirectional cursor over a Map in ascending key order. It
// holds the descent path to its position (one slot per trie level), the
// current depth, and the radix key extended by the overflow marker.
//
// An Iterator stays usable across Map mutations that do not touch the
// element it refers to. Erasing that element invalidates it; continue with
// the successor returned by EraseAt instead.
type Iterator[K, V any] struct {
	m     *Map[K, V]
	stack [16]*slot[V]
	depth int
	key   uint64
	over  int8
}

// fillStack records the descent path for the current key, one slot per
// level, without presence checks: levels under an absent subtree land
// inside the sentinel self-loop, and the depth scan afterwards stops at the
// first absent level anyway.
func (it *Iterator[K, V]) fillStack() {
	cur := it.stack[it.m.maxDepth-1]
	for q := it.m.maxDepth - 2; q >= 0; q-- {
		cur = &cur.children.slots[digit(it.key, q+1)]
		it.stack[q] = cur
	}
}

// leafSlot returns the slot addressed by the least significant digit of
// the current key. Meaningful only at depth 0.
func (it Iterator[K, V]) leafSlot() *slot[V] {
	return &it.stack[0].children.slots[digit(it.key, 0)]
}

func (it Iterator[K, V]) targetValid() bool {
	return it.depth == 0 && !it.m.slotEmpty(it.leafSlot())
}

// Valid reports whether the iterator refers to an element, i.e. whether
// Key and Value may be called.
func (it Iterator[K, V]) Valid() bool {
	return it.m != nil && it.over == 0 && it.targetValid()
}

// Key returns the element's key, restored through the inverse ordering
// transform. It panics when the iterator is not Valid.
func (it Iterator[K, V]) Key() K {
	if !it.Valid() {
		panic("radixmap: Key on non-dereferenceable iterator")
	}
	return it.m.ord.Restore(it.key)
}

// Value returns a reference to the element's stored value. It panics when
// the iterator is not Valid.
func (it Iterator[K, V]) Value() *V {
	if !it.Valid() {
		panic("radixmap: Value on non-dereferenceable iterator")
	}
	return it.leafSlot().value
}

// Equal reports whether two iterators denote the same position. The full
// (radix key, overflow) state is compared, which distinguishes a stored
// key 0 from the synthetic boundary positions even when the key space is
// fully occupied.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.key == other.key && it.over == other.over
}

// Next advances to the element with the next larger key, or parks
// past-the-end. Stepping from past-the-end stays put; stepping from
// before-the-begin resumes at the first element.
func (it *Iterator[K, V]) Next() { it.increment() }

// Prev is the mirror of Next: it retreats to the next smaller key, parks
// before-the-begin at the lower boundary, and resumes at the last element
// when stepped from past-the-end.
func (it *Iterator[K, V]) Prev() { it.decrement() }

// increment seeks the successor: descend while an unvisited subtree exists
// at the current level, otherwise advance the key's digit at this level,
// carrying upward on wrap, until a present leaf is reached or the key
// space is exhausted.
func (it *Iterator[K, V]) increment() {
	m := it.m
	for it.depth < m.maxDepth {
		if it.depth != 0 {
			child := &it.stack[it.depth].children.slots[digit(it.key, it.depth)]
			if !m.slotEmpty(child) {
				it.stack[it.depth-1] = child
				it.depth--
			} else {
				it.key, it.depth, _ = quartetIncr(it.key, it.depth, m.maxDepth)
			}
		} else {
			it.key, it.depth, _ = quartetIncr(it.key, it.depth, m.maxDepth)
		}
		if it.targetValid() {
			it.over = 0
			return
		}
	}
	if it.over == beforeBegin {
		// Resuming forward from before-the-begin lands on the first element.
		it.over = 0
		it.key = 0
		it.depth = m.maxDepth - 1
		it.increment()
		return
	}
	it.key = 0
	it.over = pastEnd
}

// decrement is the exact mirror of increment, borrowing instead of
// carrying.
func (it *Iterator[K, V]) decrement() {
	m := it.m
	for it.depth < m.maxDepth {
		if it.depth != 0 {
			child := &it.stack[it.depth].children.slots[digit(it.key, it.depth)]
			if !m.slotEmpty(child) {
				it.stack[it.depth-1] = child
				it.depth--
			} else {
				it.key, it.depth, _ = quartetDecr(it.key, it.depth, m.maxDepth)
			}
		} else {
			it.key, it.depth, _ = quartetDecr(it.key, it.depth, m.maxDepth)
		}
		if it.targetValid() {
			it.over = 0
			return
		}
	}
	if it.over == pastEnd {
		// Resuming backward from past-the-end lands on the last element.
		it.over = 0
		it.key = m.maxKey
		it.depth = m.maxDepth - 1
		it.decrement()
		return
	}
	it.key = 0
	it.over = beforeBegin
}

// eraseElem releases the current element and prunes newly empty branches
// upward along the retained stack, stopping at the first level that still
// has a surviving child. The caller owns the element count bookkeeping and
// must advance the iterator before dereferencing it again.
func (it *Iterator[K, V]) eraseElem() {
	m := it.m
	ls := it.leafSlot()
	m.alloc.Free(ls.value)
	ls.value = nil
	ls.children = m.empty
	for d := 0; d < m.maxDepth; d++ {
		if !m.nodeEmpty(it.stack[d]) {
			break
		}
		it.stack[d].children = m.empty
	}
}

// ReverseIterator walks the same positions as Iterator in descending key
// order: its Next retreats and its Prev advances. Its begin is the maximum
// present key and its end is the before-the-begin position.
type ReverseIterator[K, V any] struct {
	fwd Iterator[K, V]
}

func (it *ReverseIterator[K, V]) Next() { it.fwd.decrement() }

func (it *ReverseIterator[K, V]) Prev() { it.fwd.increment() }

func (it ReverseIterator[K, V]) Valid() bool { return it.fwd.Valid() }

func (it ReverseIterator[K, V]) Key() K { return it.fwd.Key() }

func (it ReverseIterator[K, V]) Value() *V { return it.fwd.Value() }

func (it ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	return it.fwd.Equal(other.fwd)
}
