package ports

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// Port: a read-through cache for provider option lookups.
//
// A cache miss is (nil, false, nil); cache failures are returned as
// errors and treated as misses by callers, never as lookup failures.
type OptionCache interface {
	// Get returns the cached options for a leg, if present.
	Get(ctx context.Context, mode domain.TransportMode, from, to domain.Location, departure time.Time) ([]domain.TransportOption, bool, error)

	// Put stores the options for a leg with the cache's TTL policy.
	Put(ctx context.Context, mode domain.TransportMode, from, to domain.Location, departure time.Time, options []domain.TransportOption) error
}
