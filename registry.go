package typeflow

import (
	"cmp"
	"sync"

	"github.com/lvlath-go/typeflow/core"
	"github.com/sirupsen/logrus"
)

// Converter is a single-argument, single-return conversion step. A
// failure is recorded by Convert and the failing edge is excluded from
// the next re-plan attempt; it never aborts the whole Convert call
// directly.
type Converter func(value any) (any, error)

// Revealer inspects the original value passed to Convert and yields
// variation tokens to seed the search — run once, on the initial value
// only, never on intermediates. A Revealer failure aborts Convert
// immediately.
type Revealer[V cmp.Ordered] func(value any) ([]V, error)

// Registry owns the registered edges (via a core.Graph field),
// converter callables keyed by Payload, and revealer callables keyed by
// Key — C1 and C4 of the design. Edges and callables are added once and
// persist for the Registry's lifetime; Convert builds fresh per-call
// search state on every invocation.
//
// A *Registry may be read (via Convert) concurrently from many
// goroutines as long as no AddConversion/AddRevealer/Clear call runs at
// the same time — the same readers-only discipline core.Graph documents.
type Registry[K comparable, V cmp.Ordered, D comparable] struct {
	graph *core.Graph[K, V, D]

	mu        sync.RWMutex
	functions map[D]Converter
	revealers map[K][]Revealer[V]

	keyOf   func(value any) (K, bool)
	metrics *Metrics
	logger  *logrus.Logger
}

// NewRegistry constructs an empty Registry.
func NewRegistry[K comparable, V cmp.Ordered, D comparable](opts ...RegistryOption[K, V, D]) *Registry[K, V, D] {
	r := &Registry[K, V, D]{
		graph:     core.NewGraph[K, V, D](),
		functions: make(map[D]Converter),
		revealers: make(map[K][]Revealer[V]),
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddConversion registers an edge: cost must be non-negative (negative
// costs are rejected as a programmer error, core.ErrNegativeCost).
// Registering an edge identical to one already present (same cost,
// keys, variation sets, and payload) adds no new edge — edges are
// collapsed by set semantics. fn is stored under payload in either case,
// replacing any converter already stored there, and becomes the callable
// invoked wherever an edge with that payload appears in a plan.
func (r *Registry[K, V, D]) AddConversion(cost int64, keyIn K, varsIn core.VariationSet[V], keyOut K, varsOut core.VariationSet[V], payload D, fn Converter) error {
	if fn == nil {
		return ErrNilConverter
	}

	if _, err := r.graph.AddEdge(cost, keyIn, varsIn, keyOut, varsOut, payload); err != nil {
		return err
	}

	r.mu.Lock()
	r.functions[payload] = fn
	r.mu.Unlock()

	r.metrics.setEdgesRegistered(r.graph.Len())
	return nil
}

// AddRevealer appends a revealer for keyIn. Revealers run in the order
// they were appended.
func (r *Registry[K, V, D]) AddRevealer(keyIn K, fn Revealer[V]) error {
	if fn == nil {
		return ErrNilRevealer
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.revealers[keyIn] = append(r.revealers[keyIn], fn)
	return nil
}

// Clear releases every converter and revealer reference and empties the
// edge store. Safe to call on a freshly constructed or already-cleared
// Registry. This is the Go analogue of the Python binding's __clear__:
// there is no GC traversal protocol to satisfy, but dropping the last Go
// references here makes the callables eligible for collection the same
// way.
func (r *Registry[K, V, D]) Clear() {
	r.mu.Lock()
	r.functions = make(map[D]Converter)
	r.revealers = make(map[K][]Revealer[V])
	r.mu.Unlock()

	r.graph.Clear()
	r.metrics.setEdgesRegistered(0)
}
