// Package metrics exposes Prometheus instrumentation for the planner.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
	CacheError = "error"
)

// Generation attempt outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeMalformed = "malformed"
)

// Metrics provides observability for plan caching and generation.
type Metrics struct {
	registry *prometheus.Registry

	// Cache lookups by result
	CacheLookups *prometheus.CounterVec

	// Generation attempts by provider and outcome
	GenerationAttempts *prometheus.CounterVec

	// Duration of complete generations including retries
	GenerationDuration prometheus.Histogram

	// Plans appended to the store
	PlansStored prometheus.Counter

	// Plan events by provider and outcome
	PlanEvents *prometheus.CounterVec
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nutriplan_plan_cache_lookups_total",
			Help: "Plan cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "stale", "error"

		GenerationAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nutriplan_generation_attempts_total",
			Help: "Generative backend attempts by provider and outcome",
		}, []string{"provider", "outcome"}),

		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "nutriplan_generation_duration_seconds",
			Help:    "Duration of plan generation including retries",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 90},
		}),

		PlansStored: factory.NewCounter(prometheus.CounterOpts{
			Name: "nutriplan_plans_stored_total",
			Help: "Plans appended to the plan store",
		}),

		PlanEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nutriplan_plan_events_total",
			Help: "plan.generated events by provider and outcome",
		}, []string{"provider", "outcome"}),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncCacheLookup records a cache lookup result.
func (m *Metrics) IncCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

// IncGenerationAttempt records one backend attempt.
func (m *Metrics) IncGenerationAttempt(provider, outcome string) {
	if m != nil {
		m.GenerationAttempts.WithLabelValues(provider, outcome).Inc()
	}
}

// ObserveGeneration records the total generation duration.
func (m *Metrics) ObserveGeneration(d time.Duration) {
	if m != nil {
		m.GenerationDuration.Observe(d.Seconds())
	}
}

// IncPlansStored records a stored plan.
func (m *Metrics) IncPlansStored() {
	if m != nil {
		m.PlansStored.Inc()
	}
}

// IncPlanEvent records one publish of a plan event.
func (m *Metrics) IncPlanEvent(provider, outcome string) {
	if m != nil {
		m.PlanEvents.WithLabelValues(provider, outcome).Inc()
	}
}
