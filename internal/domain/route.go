package domain

import "time"

// Represents the chosen itinerary for one participant.
// A Route wraps exactly one TransportOption (by value, never by shared
// reference) together with the objective-specific score that justified
// the choice and denormalized totals for display. It is created once per
// participant per planning run and not mutated afterwards.
type Route struct {
	Option TransportOption

	// Score is the exact value the selector minimized: the cost for
	// MINIMIZE_COST, the duration for MINIMIZE_TIME, or the weighted
	// normalized score for BALANCED. Kept for auditability.
	Score float64

	TotalDurationMinutes int
	TotalCostCents       int64
	Currency             string

	// DepartBy is the latest departure that still makes the target
	// arrival (target arrival minus the option's duration).
	DepartBy time.Time
}
