package search

import (
	"cmp"
	"sort"

	"github.com/lvlath-go/typeflow/core"
)

// ExcludedEdges is the set of edges a re-plan must avoid — the executor
// grows this set by one entry every time a converter callable fails.
type ExcludedEdges[K comparable, V cmp.Ordered, D comparable] map[*core.Edge[K, V, D]]struct{}

// Searcher runs one bidirectional best-first search over a core.Graph.
// It is built fresh for every plan/re-plan; none of its fields outlive
// the call to Search.
type Searcher[K comparable, V cmp.Ordered, D comparable] struct {
	graph *core.Graph[K, V, D]

	keyIn   K
	keyOut  K
	varsIn  core.VariationSet[V]
	varsOut core.VariationSet[V]

	excluded ExcludedEdges[K, V, D]

	queueIn  *frontier[K, V, D]
	queueOut *frontier[K, V, D]

	// visited maps edge -> fingerprint(incoming variations) -> State,
	// per spec's "Fingerprinting" note: the same edge may be visited
	// again under a different dependency context.
	visitedIn  map[*core.Edge[K, V, D]]map[uint64]*State[K, V, D]
	visitedOut map[*core.Edge[K, V, D]]map[uint64]*State[K, V, D]
}

// New builds a Searcher for one search(key_in, vars_in, key_out, vars_out,
// excluded) call.
func New[K comparable, V cmp.Ordered, D comparable](graph *core.Graph[K, V, D], keyIn K, varsIn core.VariationSet[V], keyOut K, varsOut core.VariationSet[V], excluded ExcludedEdges[K, V, D]) *Searcher[K, V, D] {
	if excluded == nil {
		excluded = ExcludedEdges[K, V, D]{}
	}
	return &Searcher[K, V, D]{
		graph:      graph,
		keyIn:      keyIn,
		keyOut:     keyOut,
		varsIn:     varsIn,
		varsOut:    varsOut,
		excluded:   excluded,
		queueIn:    newFrontier[K, V, D](),
		queueOut:   newFrontier[K, V, D](),
		visitedIn:  make(map[*core.Edge[K, V, D]]map[uint64]*State[K, V, D]),
		visitedOut: make(map[*core.Edge[K, V, D]]map[uint64]*State[K, V, D]),
	}
}

// Search finds the cheapest feasible edge sequence from (keyIn, varsIn) to
// (keyOut, varsOut), or reports ok=false if no such sequence exists.
func (s *Searcher[K, V, D]) Search() (chain []*core.Edge[K, V, D], ok bool) {
	s.setQueueIn()
	s.setQueueOut()

	for {
		switch {
		case s.queueIn.len() > 0 && (s.queueIn.len() < s.queueOut.len() || s.queueOut.len() == 0):
			if chain, ok = s.searchForward(); ok {
				return chain, true
			}
		case s.queueOut.len() > 0:
			if chain, ok = s.searchBackward(); ok {
				return chain, true
			}
		default:
			return nil, false
		}
	}
}

func (s *Searcher[K, V, D]) setQueueIn() {
	for _, e := range s.graph.ByIn(s.keyIn) {
		if !e.VarsIn.Subset(s.varsIn) {
			continue
		}
		variations := s.varsIn.Difference(e.VarsIn).Union(e.VarsOut)
		s.queueIn.push(newState(e, nil, variations, e.VarsIn.Len(), e.VarsOut.Len()))
	}
}

func (s *Searcher[K, V, D]) setQueueOut() {
	for _, e := range s.graph.ByOut(s.keyOut) {
		// Reverse search does not enforce dependency feasibility: the
		// dependency may be satisfied further up the chain once forward
		// traversal provides it.
		varConsumed := e.VarsOut.IntersectionCount(s.varsOut)
		variations := s.varsOut.Difference(e.VarsOut).Union(e.VarsIn)
		s.queueOut.push(newState(e, nil, variations, varConsumed, e.VarsIn.Len()))
	}
}

func (s *Searcher[K, V, D]) searchForward() ([]*core.Edge[K, V, D], bool) {
	state := s.queueIn.pop()
	if state == nil {
		return nil, false
	}
	if _, skip := s.excluded[state.Edge]; skip {
		return nil, false
	}

	if state.Edge.KeyOut == s.keyOut && state.Variations.Superset(s.varsOut) {
		return chainForward(state), true
	}

	if opposite, ok := s.visitedOut[state.Edge]; ok {
		parentVars := s.varsIn
		if state.Parent != nil {
			parentVars = state.Parent.Variations
		}
		for _, oppState := range sortedStates(opposite) {
			if !oppState.Variations.Subset(parentVars) {
				continue
			}
			out := chainForward(state.Parent)
			return append(out, selfToRoot(oppState)...), true
		}
	}

	fp := incomingFingerprint(state, s.varsIn)
	if s.visitedIn[state.Edge] == nil {
		s.visitedIn[state.Edge] = make(map[uint64]*State[K, V, D])
	}
	s.visitedIn[state.Edge][fp] = state

	s.addQueueIn(state)
	return nil, false
}

func (s *Searcher[K, V, D]) searchBackward() ([]*core.Edge[K, V, D], bool) {
	state := s.queueOut.pop()
	if state == nil {
		return nil, false
	}
	if _, skip := s.excluded[state.Edge]; skip {
		return nil, false
	}

	if state.Edge.KeyIn == s.keyIn && state.Variations.Subset(s.varsIn) {
		return selfToRoot(state), true
	}

	if opposite, ok := s.visitedIn[state.Edge]; ok {
		for _, oppState := range sortedStates(opposite) {
			parentVars := s.varsIn
			if oppState.Parent != nil {
				parentVars = oppState.Parent.Variations
			}
			if !state.Variations.Subset(parentVars) {
				continue
			}
			out := chainForward(oppState.Parent)
			return append(out, selfToRoot(state)...), true
		}
	}

	fp := incomingFingerprint(state, s.varsOut)
	if s.visitedOut[state.Edge] == nil {
		s.visitedOut[state.Edge] = make(map[uint64]*State[K, V, D])
	}
	s.visitedOut[state.Edge][fp] = state

	s.addQueueOut(state)
	return nil, false
}

func (s *Searcher[K, V, D]) addQueueIn(state *State[K, V, D]) {
	for _, e := range s.graph.ByIn(state.Edge.KeyOut) {
		if visited, ok := s.visitedIn[e]; ok {
			if _, seen := visited[state.Variations.Fingerprint()]; seen {
				continue
			}
		}
		if !e.VarsIn.Subset(state.Variations) {
			continue
		}
		varConsumed := state.Variations.IntersectionCount(e.VarsIn)
		variations := state.Variations.Difference(e.VarsIn).Union(e.VarsOut)
		s.queueIn.push(newState(e, state, variations, varConsumed, e.VarsOut.Len()))
	}
}

func (s *Searcher[K, V, D]) addQueueOut(state *State[K, V, D]) {
	for _, e := range s.graph.ByOut(state.Edge.KeyIn) {
		if visited, ok := s.visitedOut[e]; ok {
			if _, seen := visited[state.Variations.Fingerprint()]; seen {
				continue
			}
		}
		// No dependency check going in reverse: dependencies may be
		// satisfied further along once forward traversal supplies them.
		varConsumed := state.Variations.IntersectionCount(e.VarsOut)
		variations := state.Variations.Difference(e.VarsOut).Union(e.VarsIn)
		s.queueOut.push(newState(e, state, variations, varConsumed, e.VarsIn.Len()))
	}
}

// incomingFingerprint hashes the variation set that was active entering
// state's edge: the parent's variations, or the search's seed set if
// state is a root.
func incomingFingerprint[K comparable, V cmp.Ordered, D comparable](state *State[K, V, D], seed core.VariationSet[V]) uint64 {
	if state.Parent != nil {
		return state.Parent.Variations.Fingerprint()
	}
	return seed.Fingerprint()
}

// sortedStates returns the values of m ordered by key, so map iteration
// (which Go randomizes) never affects which of several matching opposite
// states is picked first — required for Search's determinism guarantee.
func sortedStates[K comparable, V cmp.Ordered, D comparable](m map[uint64]*State[K, V, D]) []*State[K, V, D] {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]*State[K, V, D], len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

// chainForward walks s and its ancestors (s, s.Parent, ...) and returns
// their edges in root-to-s order — the order a forward-built chain
// traverses key_in toward key_out. Nil-safe: chainForward(nil) is empty.
func chainForward[K comparable, V cmp.Ordered, D comparable](s *State[K, V, D]) []*core.Edge[K, V, D] {
	if s == nil {
		return nil
	}
	var reversed []*core.Edge[K, V, D]
	for cur := s; cur != nil; cur = cur.Parent {
		reversed = append(reversed, cur.Edge)
	}
	out := make([]*core.Edge[K, V, D], len(reversed))
	for i, e := range reversed {
		out[len(reversed)-1-i] = e
	}
	return out
}

// selfToRoot walks s and its ancestors and returns their edges in s-to-
// root order, unreversed. For a backward-built state (root nearest
// key_out, each expansion moving toward key_in), that is already the
// key_in-to-key_out order the plan needs. Nil-safe.
func selfToRoot[K comparable, V cmp.Ordered, D comparable](s *State[K, V, D]) []*core.Edge[K, V, D] {
	if s == nil {
		return nil
	}
	var out []*core.Edge[K, V, D]
	for cur := s; cur != nil; cur = cur.Parent {
		out = append(out, cur.Edge)
	}
	return out
}
