package ports

import (
	"context"
	"errors"

	"group-trip-planner/internal/domain"
)

// ErrPlanNotFound is returned when no plan has been stored for an event.
var ErrPlanNotFound = errors.New("plan not found")

// Port: a boundary for persisting finished TransportPlans.
// The engine itself never touches storage; this is the collaborator
// that serializes plan snapshots for the rest of the application.
type PlanRepository interface {
	// Save stores a plan snapshot. Saving again for the same event
	// records a new snapshot rather than updating the old one.
	Save(ctx context.Context, plan *domain.TransportPlan) error

	// Latest retrieves the most recently saved plan for an event.
	// Returns ErrPlanNotFound when the event has no stored plan.
	Latest(ctx context.Context, eventID string) (*domain.TransportPlan, error)
}
