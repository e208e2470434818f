package typeflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus-compatible instrumentation for a Registry's
// search and execution activity, following dshills-langgraph-go's
// NewPrometheusMetrics pattern: a factory bound to a caller-supplied
// registry, one typed field per metric, and a disableable zero value so
// a nil *Metrics never changes planner behavior.
//
// Metrics exposed (namespaced "typeflow_"):
//
//  1. search_duration_seconds (histogram): wall-clock time of one
//     Searcher.Search call. Labels: outcome (found/not_found).
//  2. retries_total (counter): edge-failure re-plans. Labels: outcome
//     (retry/exhausted).
//  3. edges_registered (gauge): current size of the Registry's edge
//     store, updated on AddConversion and Clear.
type Metrics struct {
	searchDuration  *prometheus.HistogramVec
	retries         *prometheus.CounterVec
	edgesRegistered prometheus.Gauge
}

// NewMetrics registers all typeflow metrics with the given registry and
// returns the collector. A nil registry uses prometheus.DefaultRegisterer.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		searchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "typeflow",
			Name:      "search_duration_seconds",
			Help:      "Duration of one bidirectional search call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		retries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typeflow",
			Name:      "retries_total",
			Help:      "Edge-failure re-plans performed during Convert.",
		}, []string{"outcome"}),
		edgesRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "typeflow",
			Name:      "edges_registered",
			Help:      "Current number of edges in the registry's edge store.",
		}),
	}
}

func (m *Metrics) observeSearch(seconds float64, found bool) {
	if m == nil {
		return
	}
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	m.searchDuration.WithLabelValues(outcome).Observe(seconds)
}

func (m *Metrics) recordRetry(exhausted bool) {
	if m == nil {
		return
	}
	outcome := "retry"
	if exhausted {
		outcome = "exhausted"
	}
	m.retries.WithLabelValues(outcome).Inc()
}

func (m *Metrics) setEdgesRegistered(n int) {
	if m == nil {
		return
	}
	m.edgesRegistered.Set(float64(n))
}
