package services

import (
	"fmt"
	"time"

	"group-trip-planner/internal/domain"
)

// Weights for the BALANCED objective. The caps in ScoringConfig are
// tunable policy; the 40/60 cost/time split is part of the objective's
// definition.
const (
	balancedCostWeight = 0.4
	balancedTimeWeight = 0.6
)

// ScoringConfig holds the normalization caps for the BALANCED
// objective. The caps bring cost and duration onto comparable scales;
// they are not clamps: an option beyond a cap simply contributes a
// normalized term greater than 1. Their values encode a judgment about
// "typical" trip cost and duration, so they are configuration, not
// constants.
type ScoringConfig struct {
	CostCapCents       int64
	DurationCapMinutes int
}

// DefaultScoringConfig caps at 1000 currency units and one day.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		CostCapCents:       100_000,
		DurationCapMinutes: 1440,
	}
}

func (c ScoringConfig) validate() error {
	if c.CostCapCents <= 0 {
		return fmt.Errorf("scoring config: cost cap must be positive, got %d: %w", c.CostCapCents, ErrInvalidInput)
	}
	if c.DurationCapMinutes <= 0 {
		return fmt.Errorf("scoring config: duration cap must be positive, got %d: %w", c.DurationCapMinutes, ErrInvalidInput)
	}
	return nil
}

// SelectBestRoute picks the single best option under the given
// objective and wraps it as a Route. Returns nil (with nil error) when
// options is empty; no feasible route is a result, not a failure.
//
// Ties keep the first option encountered, so given the aggregator's
// cost-ascending input the selection is deterministic.
func SelectBestRoute(
	options []domain.TransportOption,
	objective domain.OptimizationObjective,
	targetArrival time.Time,
	scoring ScoringConfig,
) (*domain.Route, error) {
	if err := scoring.validate(); err != nil {
		return nil, fmt.Errorf("select best route: %w", err)
	}

	if len(options) == 0 {
		return nil, nil
	}

	score, err := scoreFunc(objective, scoring)
	if err != nil {
		return nil, fmt.Errorf("select best route: %w", err)
	}

	best := 0
	bestScore := score(options[0])
	for i := 1; i < len(options); i++ {
		if s := score(options[i]); s < bestScore {
			best = i
			bestScore = s
		}
	}

	chosen := options[best]
	return &domain.Route{
		Option:               chosen,
		Score:                bestScore,
		TotalDurationMinutes: chosen.DurationMinutes,
		TotalCostCents:       chosen.CostCents,
		Currency:             chosen.Currency,
		DepartBy:             targetArrival.Add(-time.Duration(chosen.DurationMinutes) * time.Minute),
	}, nil
}

// scoreFunc returns the value the selector minimizes for an objective.
// The returned value is also stored on the Route for auditability.
func scoreFunc(objective domain.OptimizationObjective, scoring ScoringConfig) (func(domain.TransportOption) float64, error) {
	switch objective {
	case domain.MinimizeCost:
		return func(o domain.TransportOption) float64 {
			return float64(o.CostCents)
		}, nil
	case domain.MinimizeTime:
		return func(o domain.TransportOption) float64 {
			return float64(o.DurationMinutes)
		}, nil
	case domain.Balanced:
		return func(o domain.TransportOption) float64 {
			costTerm := float64(o.CostCents) / float64(scoring.CostCapCents)
			timeTerm := float64(o.DurationMinutes) / float64(scoring.DurationCapMinutes)
			return balancedCostWeight*costTerm + balancedTimeWeight*timeTerm
		}, nil
	default:
		return nil, fmt.Errorf("unknown objective %q: %w", objective, ErrInvalidInput)
	}
}
