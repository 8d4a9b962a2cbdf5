package radixmap

import "errors"

// ErrKeyNotFound is returned by At for keys that have no element.
var ErrKeyNotFound = errors.New("radixmap: key not found")

// Ordering is the pluggable key transform: a total-order-preserving
// bijection between a native fixed-width key type and an unsigned radix
// key. Package ordering provides transforms for the signed, unsigned and
// IEEE-754 key types.
//
// The key type must be fixed-width and bit-reinterpretable; violating that
// is a caller contract violation, not a checked error.
type Ordering[K any] interface {
	// Width returns the radix key width in bytes, 1 to 8. Trie depth is
	// 2*Width digits.
	Width() int

	// Apply maps a native key to its radix key, such that unsigned
	// comparison of radix keys matches the semantic ordering of the
	// native keys. Only the low Width bytes may be set.
	Apply(K) uint64

	// Restore is the exact inverse of Apply.
	Restore(uint64) K
}

// Allocator owns leaf value storage: one allocation per occupied key.
// Alloc returns zero-valued storage for a single element; Free releases
// storage previously obtained from Alloc. An implementation that cannot
// allocate must panic; the container does not retry.
type Allocator[V any] interface {
	Alloc() *V
	Free(*V)
}

// heap is the default Allocator: one Go heap allocation per element.
type heap[V any] struct{}

func (heap[V]) Alloc() *V { return new(V) }
func (heap[V]) Free(*V)   {}
