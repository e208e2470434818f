package typeflow

import (
	"fmt"
	"time"

	"github.com/lvlath-go/typeflow/core"
	"github.com/lvlath-go/typeflow/search"
)

// maxConvertAttempts bounds how many times Convert will re-plan around a
// failing converter before giving up. Kept as a literal rather than a
// configurable option: the original implementation hardcodes the same
// bound and no caller in the retrieval pack surfaced a need to tune it.
const maxConvertAttempts = 10

// Convert drives value from whatever key/variation state it is currently
// in toward keyWant/vars described by opts, invoking registered converter
// callables along the cheapest feasible edge chain the Registry can find.
//
// Steps, matching the registered algorithm:
//
//  1. Resolve the starting key: KeyHave if supplied, else the Registry's
//     key resolver applied to value.
//  2. Resolve the starting variation set: VarsHave, extended by every
//     revealer registered for that key, unless Explicit was set.
//  3. If the starting key equals keyWant and the starting variation set
//     equals VarsWant, return value unchanged — no callable is invoked.
//  4. Search for the cheapest edge chain from (key, vars) to
//     (keyWant, VarsWant).
//  5. If no chain exists and no converter has failed yet, return a
//     *TypeMismatchError.
//  6. Fold the chain's converters over value in order. If one fails,
//     record the failure, exclude that edge, and re-plan — up to
//     maxConvertAttempts times.
//  7. If the attempts run out, or a re-plan finds no chain after at least
//     one failure, return a *ConversionError collecting every step
//     failure observed.
func (r *Registry[K, V, D]) Convert(value any, keyWant K, opts ...ConvertOption[K, V]) (any, error) {
	cfg := convertConfig[K, V]{}
	for _, opt := range opts {
		opt(&cfg)
	}

	keyHave, ok := cfg.keyHave, cfg.hasKeyHave
	if !ok {
		if r.keyOf == nil {
			return nil, &TypeMismatchError{Value: value, KeyWant: keyWant}
		}
		keyHave, ok = r.keyOf(value)
		if !ok {
			return nil, &TypeMismatchError{Value: value, KeyWant: keyWant}
		}
	}

	varsHave := cfg.varsHave
	if !cfg.explicit {
		revealed, err := r.reveal(keyHave, value)
		if err != nil {
			return nil, err
		}
		varsHave = varsHave.Union(revealed)
	}

	if keyHave == keyWant && varsHave.Equal(cfg.varsWant) {
		return value, nil
	}

	excluded := search.ExcludedEdges[K, V, D]{}
	var failures []string

	for attempt := 0; attempt < maxConvertAttempts; attempt++ {
		chain, found := r.plan(keyHave, varsHave, keyWant, cfg.varsWant, excluded)
		if !found {
			break
		}

		cur := value
		var failedEdge *core.Edge[K, V, D]
		var stepErr error

		for _, edge := range chain {
			fn := r.lookupConverter(edge.Payload)
			if cfg.debug {
				traceStep(r.logger, "before", edge.KeyIn, edge.KeyOut, edge.Payload, nil)
			}
			next, err := fn(cur)
			if cfg.debug {
				traceStep(r.logger, "after", edge.KeyIn, edge.KeyOut, edge.Payload, err)
			}
			if err != nil {
				failedEdge = edge
				stepErr = err
				break
			}
			cur = next
		}

		if stepErr == nil {
			return cur, nil
		}

		failures = append(failures, fmt.Sprintf("converting %v to %v via %v: %v", keyHave, keyWant, failedEdge.Payload, stepErr))
		excluded[failedEdge] = struct{}{}
		r.metrics.recordRetry(attempt == maxConvertAttempts-1)
	}

	if len(failures) == 0 {
		return nil, &TypeMismatchError{Value: value, KeyWant: keyWant}
	}
	return nil, &ConversionError{Steps: failures}
}

// plan wraps a single Searcher.Search call, recording its duration.
func (r *Registry[K, V, D]) plan(keyHave K, varsHave core.VariationSet[V], keyWant K, varsWant core.VariationSet[V], excluded search.ExcludedEdges[K, V, D]) ([]*core.Edge[K, V, D], bool) {
	start := time.Now()
	chain, ok := search.New(r.graph, keyHave, varsHave, keyWant, varsWant, excluded).Search()
	r.metrics.observeSearch(time.Since(start).Seconds(), ok)
	return chain, ok
}

// reveal runs every revealer registered for keyHave against value, in
// registration order, and unions their yields.
func (r *Registry[K, V, D]) reveal(keyHave K, value any) (core.VariationSet[V], error) {
	r.mu.RLock()
	revealers := append([]Revealer[V](nil), r.revealers[keyHave]...)
	r.mu.RUnlock()

	var tokens []V
	for _, fn := range revealers {
		yielded, err := fn(value)
		if err != nil {
			return nil, fmt.Errorf("typeflow: revealer for %v failed: %w", keyHave, err)
		}
		tokens = append(tokens, yielded...)
	}
	return core.NewVariationSet(tokens...), nil
}

func (r *Registry[K, V, D]) lookupConverter(payload D) Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.functions[payload]
}
