package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/ports"
)

// PostgresPlanRepository persists TransportPlan snapshots as JSONB
// rows. Each save appends a new snapshot; Latest returns the newest
// one for an event, matching the plan's append-only lifecycle.
type PostgresPlanRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPlanRepository(pool *pgxpool.Pool) *PostgresPlanRepository {
	return &PostgresPlanRepository{pool: pool}
}

var _ ports.PlanRepository = (*PostgresPlanRepository)(nil)

func (r *PostgresPlanRepository) Save(ctx context.Context, plan *domain.TransportPlan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("save plan: encode plan for event %q: %w", plan.EventID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO transport_plans (event_id, plan, created_at) VALUES ($1, $2, $3)`,
		plan.EventID, string(raw), plan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save plan: insert plan for event %q: %w", plan.EventID, err)
	}

	return nil
}

func (r *PostgresPlanRepository) Latest(ctx context.Context, eventID string) (*domain.TransportPlan, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT plan FROM transport_plans WHERE event_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		eventID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ports.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest plan: query event %q: %w", eventID, err)
	}

	var plan domain.TransportPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("latest plan: decode plan for event %q: %w", eventID, err)
	}

	return &plan, nil
}
