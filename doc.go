package radixmap

/*

# Radixmap: a sorted key→value map on a fixed-depth 16-ary radix trie

This package provides an ordered associative container whose lookup, insert
and delete costs are bounded by the key width rather than by a tree height,
and whose in-order traversal needs no per-node comparisons. It replaces the
comparator of a conventional ordered map with a digital decomposition of the
key: an order-preserving transform maps the native key to an unsigned "radix
key", and the trie branches on its 4-bit digits ("quartets"), most
significant digit first.

It follows the same "explicit layouts, small composable pieces" style as
the forestrie primitives: the trie shape is a pure function of the key
width, never of insertion order, and there is no rebalancing.

## Core invariants

 1. exactly one element per distinct radix key; two keys collide iff their
    transformed radix keys are equal
 2. every reachable internal node has at least one non-sentinel child once a
    mutation completes (pruning is eager)
 3. the element count equals the number of reachable leaf slots
 4. the sentinel node's 16 slots refer to the sentinel node itself, for the
    lifetime of the Map that owns it

## The sentinel self-loop

Absent children are not nil: they refer to a per-Map sentinel node whose own
slots all refer back to the sentinel. A lookup can therefore descend all
2×width levels blindly, without per-level presence checks; a path that left
the populated part of the trie circulates inside the sentinel and the final
slot still compares empty. Emptiness of a slot is a single pointer
comparison against the sentinel.

## Successor and predecessor over a sparse trie

Iterators keep the descent path (one slot per level), the current depth, and
the radix key extended by an overflow marker. Seeking the next element
treats the key's digits as a base-16 odometer: descend while an unvisited
subtree exists at the current level, otherwise advance the digit at the
current level, carrying into upper levels on wrap (and resetting the digits
below, so the seek resumes at the minimum of the new subtree). The overflow
marker represents the two positions outside the key range: +1 past the last
representable key, -1 before the first. Iterator equality compares the
(radix key, overflow) pair, which distinguishes a real key 0 from the
synthetic boundary positions even when the key space is fully occupied.

## Collaborators

Key ordering is pluggable via [Ordering]; package ordering provides
transforms for the fixed-width signed, unsigned and IEEE-754 key types.
Leaf value storage is pluggable via [Allocator]; package alloc provides a
plain heap allocator and a pooled one.

The container is single-threaded: no internal synchronization, no blocking
operations. Callers needing concurrent access must partition or lock
externally.

*/
