package domain

import "time"

// Represents the planned group convergence for a single event.
// A TransportPlan is the output of one planning run and is treated as an
// immutable snapshot: re-planning produces a new plan, never an in-place
// update. Persistence, if any, belongs to an external collaborator that
// serializes the plan.
type TransportPlan struct {
	EventID string

	// Routes maps participant id to the chosen route; one entry per
	// resolved participant.
	Routes map[string]Route

	// Unresolved lists participants for whom no route could be found,
	// in sorted order. They are surfaced here rather than silently
	// dropped from Routes.
	Unresolved []string
	Partial    bool

	// Rendezvous holds one mean arrival instant per coordination
	// window, in chronological order.
	Rendezvous []time.Time

	TotalCostCents int64
	Currency       string
	Objective      OptimizationObjective
	CreatedAt      time.Time
}

// ResolvedCount returns the number of participants with a chosen route.
func (p *TransportPlan) ResolvedCount() int {
	return len(p.Routes)
}
