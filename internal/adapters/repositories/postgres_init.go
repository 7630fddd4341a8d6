package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS transport_plans (
	id         BIGSERIAL PRIMARY KEY,
	event_id   TEXT        NOT NULL,
	plan       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transport_plans_event
	ON transport_plans (event_id, created_at DESC);
`

// InitSchema creates the plan storage tables if they do not exist.
// Safe to run at every startup.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
