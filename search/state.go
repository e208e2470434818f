package search

import (
	"cmp"

	"github.com/lvlath-go/typeflow/core"
)

// State is one node of the search frontier: the edge just traversed, the
// variation set active after traversing it, the accumulated cost and
// tie-break counters, and a parent back-link to the previous State on
// this partial path (nil for a root). States are constructed once and
// referenced from both a priority queue and a visited map; nothing
// mutates a State after newState returns it.
type State[K comparable, V cmp.Ordered, D comparable] struct {
	Edge        *core.Edge[K, V, D]
	Variations  core.VariationSet[V]
	Cost        int64
	VarConsumed int // cumulative, over this State and every ancestor
	VarAdded    int // cumulative, over this State and every ancestor
	Parent      *State[K, V, D]
}

// newState builds a State from a just-traversed edge, the variation set
// active after traversing it, and localVarConsumed/localVarAdded — the
// contribution of this single edge (not yet accumulated with the
// parent's counters).
func newState[K comparable, V cmp.Ordered, D comparable](edge *core.Edge[K, V, D], parent *State[K, V, D], variations core.VariationSet[V], localVarConsumed, localVarAdded int) *State[K, V, D] {
	s := &State[K, V, D]{
		Edge:        edge,
		Variations:  variations,
		VarConsumed: localVarConsumed,
		VarAdded:    localVarAdded,
		Parent:      parent,
	}
	if parent != nil {
		s.Cost = parent.Cost + edge.Cost
		s.VarConsumed += parent.VarConsumed
		s.VarAdded += parent.VarAdded
	} else {
		s.Cost = edge.Cost
	}
	return s
}

// less implements the search order of spec §3: smaller cost first; among
// equal costs, more variations consumed first; among ties on both, more
// variations added first. Used by the heap to pick the state to expand
// next.
//
// A three-key order still leaves ties whenever two distinct chains carry
// the same cost and counters — the original's State additionally orders
// on variations, edge, and parent so its total order never depends on
// iteration order. core.Graph.ByIn/ByOut iterate a Go map, so without an
// equivalent tail this heap would break ties by push order, which varies
// run to run. Fall through to the active variation set's fingerprint,
// then the edge's own fingerprint — both pure functions of content, so
// two states that still tie here really are interchangeable.
func (s *State[K, V, D]) less(other *State[K, V, D]) bool {
	if s.Cost != other.Cost {
		return s.Cost < other.Cost
	}
	if s.VarConsumed != other.VarConsumed {
		return s.VarConsumed > other.VarConsumed
	}
	if s.VarAdded != other.VarAdded {
		return s.VarAdded > other.VarAdded
	}
	if fp, otherFp := s.Variations.Fingerprint(), other.Variations.Fingerprint(); fp != otherFp {
		return fp < otherFp
	}
	return s.Edge.Fingerprint() < other.Edge.Fingerprint()
}
