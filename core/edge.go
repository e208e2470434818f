package core

import (
	"cmp"
	"fmt"
	"hash/fnv"
)

// Edge is an immutable registered converter: it carries the type slots
// (KeyIn, KeyOut) it converts between, the variation sets it requires
// (VarsIn) and produces (VarsOut), its Cost, and a Payload naming the
// converter callable. Two edges are identical iff all six fields match;
// Graph.AddEdge collapses identical edges into one (set semantics).
//
// Edges are owned by a Graph and shared by pointer with the search
// package; nothing mutates an Edge after Graph.AddEdge constructs it.
type Edge[K comparable, V cmp.Ordered, D comparable] struct {
	Cost    int64
	KeyIn   K
	KeyOut  K
	VarsIn  VariationSet[V]
	VarsOut VariationSet[V]
	Payload D
}

// Fingerprint identifies an edge by the value of all six fields, used to
// collapse duplicate registrations in Graph.AddEdge and as a stable
// tiebreaker wherever edges must be ordered deterministically (the
// search package's priority queue). Distinct from VariationSet's own
// Fingerprint, which hashes only a variation set.
func (e *Edge[K, V, D]) Fingerprint() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%v|%v|%d|%d|%v", e.Cost, e.KeyIn, e.KeyOut, e.VarsIn.Fingerprint(), e.VarsOut.Fingerprint(), e.Payload)
	return h.Sum64()
}
