package search

import (
	"cmp"
	"container/heap"
)

// statePQ is a min-heap of *State ordered by State.less, the same
// container/heap.Interface idiom lvlath/graph/dijkstra.go's nodePQ uses
// for its Dijkstra frontier.
type statePQ[K comparable, V cmp.Ordered, D comparable] []*State[K, V, D]

func (pq statePQ[K, V, D]) Len() int            { return len(pq) }
func (pq statePQ[K, V, D]) Less(i, j int) bool  { return pq[i].less(pq[j]) }
func (pq statePQ[K, V, D]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ[K, V, D]) Push(x interface{}) { *pq = append(*pq, x.(*State[K, V, D])) }
func (pq *statePQ[K, V, D]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

// frontier wraps a statePQ behind the small push/pop/len surface the
// Searcher needs, so searcher.go reads as plain queue operations rather
// than raw container/heap calls.
type frontier[K comparable, V cmp.Ordered, D comparable] struct {
	pq statePQ[K, V, D]
}

func newFrontier[K comparable, V cmp.Ordered, D comparable]() *frontier[K, V, D] {
	f := &frontier[K, V, D]{}
	heap.Init(&f.pq)
	return f
}

func (f *frontier[K, V, D]) push(s *State[K, V, D]) { heap.Push(&f.pq, s) }

func (f *frontier[K, V, D]) pop() *State[K, V, D] {
	if f.pq.Len() == 0 {
		return nil
	}
	return heap.Pop(&f.pq).(*State[K, V, D])
}

func (f *frontier[K, V, D]) len() int { return f.pq.Len() }
