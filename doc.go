// Package typeflow plans and executes typed conversions: given a value of
// some starting type and a desired target type, it synthesizes a chain of
// registered converter functions that transforms the value step by step,
// picking the cheapest feasible chain, and runs that chain with bounded
// retry against per-step failures.
//
// 🚀 What is typeflow?
//
//	A small, thread-safe library that brings together:
//
//	  • core     — the immutable Edge record and the two-index edge store
//	  • search   — bidirectional best-first search over that edge store
//	  • Registry — owns converters and revealers, drives search + execution
//
// Register converters and (optionally) revealers, then ask for a
// conversion:
//
//	reg := typeflow.NewRegistry[string, string, string]()
//	reg.AddConversion(1, "path", nil, "bytes", nil, "readFile", func(v any) (any, error) {
//		return os.ReadFile(v.(string))
//	})
//	out, err := reg.Convert("/tmp/x", "bytes", typeflow.WithKeyHave[string, string]("path"))
//
// Under the hood, everything is organized under two subpackages:
//
//	core/       — Edge, VariationSet, Graph (the two-index edge store)
//	search/     — State, Searcher (bidirectional best-first search)
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full design
// and its grounding.
package typeflow
