package domain

import "fmt"

// OptimizationObjective is the group-wide criterion used to rank options.
// It is selected once per planning run and applied uniformly to every
// participant.
type OptimizationObjective string

const (
	MinimizeCost OptimizationObjective = "MINIMIZE_COST"
	MinimizeTime OptimizationObjective = "MINIMIZE_TIME"
	Balanced     OptimizationObjective = "BALANCED"
)

// ParseObjective converts an external string into an OptimizationObjective.
func ParseObjective(s string) (OptimizationObjective, error) {
	switch o := OptimizationObjective(s); o {
	case MinimizeCost, MinimizeTime, Balanced:
		return o, nil
	default:
		return "", fmt.Errorf("parse objective: unknown objective %q", s)
	}
}
