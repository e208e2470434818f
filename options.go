package typeflow

import (
	"cmp"

	"github.com/lvlath-go/typeflow/core"
	"github.com/sirupsen/logrus"
)

// RegistryOption configures a Registry at construction time, resolved
// into the Registry itself — the same functional-option shape as
// lvlath/core's GraphOption and lvlath/builder's BuilderOption.
type RegistryOption[K comparable, V cmp.Ordered, D comparable] func(*Registry[K, V, D])

// WithKeyResolver supplies the function used to derive key_in from a
// value when Convert is called without KeyHave. This generalizes the
// "runtime type of value" spec describes as host-defined: a standalone
// Go module has no host binding to defer to, so callers provide it
// explicitly. fn should return ok=false for values it cannot classify.
func WithKeyResolver[K comparable, V cmp.Ordered, D comparable](fn func(value any) (K, bool)) RegistryOption[K, V, D] {
	return func(r *Registry[K, V, D]) { r.keyOf = fn }
}

// WithMetrics attaches a Metrics collector. A nil Metrics (the default)
// records nothing.
func WithMetrics[K comparable, V cmp.Ordered, D comparable](m *Metrics) RegistryOption[K, V, D] {
	return func(r *Registry[K, V, D]) { r.metrics = m }
}

// WithLogger overrides the logrus.Logger used for debug tracing. The
// default is logrus.StandardLogger().
func WithLogger[K comparable, V cmp.Ordered, D comparable](logger *logrus.Logger) RegistryOption[K, V, D] {
	return func(r *Registry[K, V, D]) { r.logger = logger }
}

// ConvertOption configures one Convert call. The zero value of
// convertConfig matches spec's documented defaults (empty variation
// sets, runtime-resolved key_in, revealers enabled, tracing disabled).
type ConvertOption[K comparable, V cmp.Ordered] func(*convertConfig[K, V])

type convertConfig[K comparable, V cmp.Ordered] struct {
	varsWant   core.VariationSet[V]
	keyHave    K
	hasKeyHave bool
	varsHave   core.VariationSet[V]
	explicit   bool
	debug      bool
}

// WithVarsWant sets the target variation set (default: empty).
func WithVarsWant[K comparable, V cmp.Ordered](vars core.VariationSet[V]) ConvertOption[K, V] {
	return func(c *convertConfig[K, V]) { c.varsWant = vars }
}

// WithKeyHave overrides the starting key instead of resolving it from the
// value via the Registry's key resolver.
func WithKeyHave[K comparable, V cmp.Ordered](key K) ConvertOption[K, V] {
	return func(c *convertConfig[K, V]) {
		c.keyHave = key
		c.hasKeyHave = true
	}
}

// WithVarsHave seeds the starting variation set (default: empty).
func WithVarsHave[K comparable, V cmp.Ordered](vars core.VariationSet[V]) ConvertOption[K, V] {
	return func(c *convertConfig[K, V]) { c.varsHave = vars }
}

// WithExplicit skips all revealer invocation, using exactly the supplied
// VarsHave (default: revealers run).
func WithExplicit[K comparable, V cmp.Ordered]() ConvertOption[K, V] {
	return func(c *convertConfig[K, V]) { c.explicit = true }
}

// WithDebug emits a trace entry before and after each converter call
// (default: off).
func WithDebug[K comparable, V cmp.Ordered]() ConvertOption[K, V] {
	return func(c *convertConfig[K, V]) { c.debug = true }
}
