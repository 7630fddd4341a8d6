package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/platform/obs"
)

// BuildPlanRequest carries the inputs for one planning run.
type BuildPlanRequest struct {
	EventID       string
	Participants  map[string]domain.Location
	Destination   domain.Location
	TargetArrival time.Time
	Objective     domain.OptimizationObjective
	MaxGapMinutes int
}

// Planner resolves a best route per participant and assembles the
// group TransportPlan.
type Planner struct {
	aggregator      *Aggregator
	scoring         ScoringConfig
	workers         int
	defaultCurrency string
	logger          *slog.Logger
}

// NewPlanner builds a planner. workers bounds the per-participant
// fan-out; values below 1 fall back to 1.
func NewPlanner(aggregator *Aggregator, scoring ScoringConfig, workers int, defaultCurrency string, logger *slog.Logger) *Planner {
	if workers < 1 {
		workers = 1
	}
	return &Planner{
		aggregator:      aggregator,
		scoring:         scoring,
		workers:         workers,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

type participantResult struct {
	id    string
	route *domain.Route
	err   error
}

// BuildPlan resolves every participant's best route toward the
// destination and clusters the resulting arrivals into rendezvous
// windows.
//
// Participants are resolved concurrently on a bounded pool; clustering
// runs strictly after the fan-in barrier because it needs the complete
// arrival set. Participants that cannot be resolved (no options, or
// cut off by the context deadline) are listed on the plan as
// unresolved rather than dropped, and the plan is marked partial. An
// empty participant map yields a valid empty plan.
func (p *Planner) BuildPlan(ctx context.Context, req BuildPlanRequest) (_ *domain.TransportPlan, err error) {
	defer obs.Time(ctx, "planner.BuildPlan", p.logger)(&err)

	if !req.Destination.Valid() {
		return nil, fmt.Errorf("build plan: destination has no code: %w", ErrInvalidInput)
	}
	if req.TargetArrival.IsZero() {
		return nil, fmt.Errorf("build plan: target arrival is zero: %w", ErrInvalidInput)
	}
	if req.MaxGapMinutes <= 0 {
		return nil, fmt.Errorf("build plan: maxGapMinutes must be positive, got %d: %w", req.MaxGapMinutes, ErrInvalidInput)
	}
	if _, err := scoreFunc(req.Objective, p.scoring); err != nil {
		return nil, fmt.Errorf("build plan: %w", err)
	}

	eventID := req.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}

	plan := &domain.TransportPlan{
		EventID:    eventID,
		Routes:     make(map[string]domain.Route, len(req.Participants)),
		Unresolved: []string{},
		Rendezvous: []time.Time{},
		Currency:   p.defaultCurrency,
		Objective:  req.Objective,
		CreatedAt:  time.Now().UTC(),
	}

	if len(req.Participants) == 0 {
		return plan, nil
	}

	sem := make(chan struct{}, p.workers)
	resultsCh := make(chan participantResult, len(req.Participants))
	var wg sync.WaitGroup

	for id, home := range req.Participants {
		wg.Add(1)
		go func(id string, home domain.Location) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			resultsCh <- p.resolveParticipant(ctx, id, home, req)
		}(id, home)
	}

	// Fan-in barrier: clustering must see the complete arrival set.
	wg.Wait()
	close(resultsCh)

	arrivals := make([]time.Time, 0, len(req.Participants))
	for res := range resultsCh {
		if res.route == nil {
			if res.err != nil {
				p.logger.Warn("participant unresolved",
					slog.String("event_id", eventID),
					slog.String("participant", res.id),
					slog.String("reason", res.err.Error()),
				)
			}
			plan.Unresolved = append(plan.Unresolved, res.id)
			continue
		}

		plan.Routes[res.id] = *res.route
		plan.TotalCostCents += res.route.TotalCostCents
		if plan.Currency == "" {
			plan.Currency = res.route.Currency
		}
		arrivals = append(arrivals, res.route.Option.Arrival)
	}

	sort.Strings(plan.Unresolved)
	plan.Partial = len(plan.Unresolved) > 0

	windows, err := ClusterArrivals(arrivals, req.MaxGapMinutes)
	if err != nil {
		return nil, fmt.Errorf("build plan: cluster arrivals: %w", err)
	}
	plan.Rendezvous = windows

	obs.ObservePlan(string(req.Objective), len(plan.Routes), len(plan.Unresolved))

	return plan, nil
}

// resolveParticipant runs the aggregator and selector for one
// participant. A nil route with nil error means no options existed; a
// nil route with an error carries the failure reason (for example a
// deadline cut-off); either way the participant ends up unresolved.
func (p *Planner) resolveParticipant(ctx context.Context, id string, home domain.Location, req BuildPlanRequest) participantResult {
	if err := ctx.Err(); err != nil {
		return participantResult{id: id, err: fmt.Errorf("resolve participant: %w", err)}
	}

	options, err := p.aggregator.GetOptions(ctx, home, req.Destination, req.TargetArrival, "")
	if err != nil {
		return participantResult{id: id, err: fmt.Errorf("resolve participant: get options: %w", err)}
	}

	route, err := SelectBestRoute(options, req.Objective, req.TargetArrival, p.scoring)
	if err != nil {
		return participantResult{id: id, err: fmt.Errorf("resolve participant: select route: %w", err)}
	}

	return participantResult{id: id, route: route}
}
