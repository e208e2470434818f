package core

import "errors"

// Sentinel errors for core edge-store operations. Following lvlath's
// error policy: only sentinels are exported, callers branch with
// errors.Is, and sentinels are never wrapped with formatted strings at
// the definition site.
var (
	// ErrNegativeCost indicates AddEdge was called with a negative cost.
	// The original implementation left this unchecked; this module
	// tightens the contract per spec (negative costs are a programmer
	// error, not a search-time condition).
	ErrNegativeCost = errors.New("core: edge cost must be non-negative")
)
