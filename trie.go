package radixmap

// node is one 16-way branch level: a child slot per possible digit value.
type node[V any] struct {
	slots [16]slot[V]
}

// slot is a single trie storage unit. The meaningful field is decided by
// trie position, not by a runtime tag: at internal levels children is the
// branch below (or the owning Map's sentinel when absent), at the leaf
// level value holds the element. An absent slot, at any level, satisfies
// children == sentinel; an occupied leaf slot has children == nil.
type slot[V any] struct {
	children *node[V]
	value    *V
}

// newSentinel builds the per-Map empty-node constant: all 16 slots refer
// back to the node itself. The self-loop is what lets descents run through
// absent subtrees without presence checks. The node must never be mutated
// after construction.
func newSentinel[V any]() *node[V] {
	n := &node[V]{}
	for i := range n.slots {
		n.slots[i].children = n
	}
	return n
}

func (m *Map[K, V]) newNode() *node[V] {
	n := &node[V]{}
	for i := range n.slots {
		n.slots[i].children = m.empty
	}
	return n
}

func (m *Map[K, V]) slotEmpty(s *slot[V]) bool {
	return s.children == m.empty
}

// nodeEmpty reports whether every child of the branch held by s is absent.
func (m *Map[K, V]) nodeEmpty(s *slot[V]) bool {
	for i := range s.children.slots {
		if s.children.slots[i].children != m.empty {
			return false
		}
	}
	return true
}

// lookup walks every digit of rk without allocating and returns the value
// stored at the leaf, or nil when any level of the path is absent. The walk
// is deliberately unconditional: an absent level routes it into the
// sentinel self-loop, and the slot it ends on still compares empty.
func (m *Map[K, V]) lookup(rk uint64) *V {
	cur := &m.root
	for q := m.maxDepth - 1; q >= 0; q-- {
		cur = &cur.children.slots[digit(rk, q)]
	}
	if m.slotEmpty(cur) {
		return nil
	}
	return cur.value
}

// createLeaf walks every digit of rk, allocating any absent branch along
// the path, and returns the leaf slot. The caller must occupy the slot
// before the next prune runs, or reachable-empty-branch pruning breaks.
func (m *Map[K, V]) createLeaf(rk uint64) *slot[V] {
	cur := &m.root
	for q := m.maxDepth - 1; q >= 0; q-- {
		if cur.children == m.empty {
			cur.children = m.newNode()
		}
		cur = &cur.children.slots[digit(rk, q)]
	}
	return cur
}

// place occupies the leaf slot for rk with freshly allocated storage,
// filled by construct when non-nil and zero-valued otherwise.
func (m *Map[K, V]) place(rk uint64, construct func() V) *V {
	ls := m.createLeaf(rk)
	p := m.alloc.Alloc()
	if construct != nil {
		*p = construct()
	}
	ls.value = p
	ls.children = nil
	m.count++
	return p
}

// releaseTree returns every value below s to the allocator, depth first.
// Branch storage itself is reclaimed by the runtime once unreferenced.
func (m *Map[K, V]) releaseTree(s *slot[V], depth int) {
	if m.slotEmpty(s) {
		return
	}
	if depth == 0 {
		m.alloc.Free(s.value)
		return
	}
	for i := range s.children.slots {
		m.releaseTree(&s.children.slots[i], depth-1)
	}
}
