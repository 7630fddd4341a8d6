package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	plansBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_plans_built_total",
		Help: "Completed planning runs by objective.",
	}, []string{"objective"})

	participantsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_participants_resolved_total",
		Help: "Participants for whom a route was selected.",
	})

	participantsUnresolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_participants_unresolved_total",
		Help: "Participants left without a route after a planning run.",
	})

	providerRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_provider_retries_total",
		Help: "Retry attempts against option providers by mode.",
	}, []string{"mode"})

	optionCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_option_cache_lookups_total",
		Help: "Option cache lookups by outcome (hit, miss, error).",
	}, []string{"outcome"})
)

// ObservePlan records the outcome of one planning run.
func ObservePlan(objective string, resolved, unresolved int) {
	plansBuilt.WithLabelValues(objective).Inc()
	participantsResolved.Add(float64(resolved))
	participantsUnresolved.Add(float64(unresolved))
}

// ObserveProviderRetry records a retry against a provider adapter.
func ObserveProviderRetry(mode string) {
	providerRetries.WithLabelValues(mode).Inc()
}

// ObserveCacheLookup records an option cache lookup outcome.
func ObserveCacheLookup(outcome string) {
	optionCacheLookups.WithLabelValues(outcome).Inc()
}
