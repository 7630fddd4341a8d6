package ports

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// Contract for sourcing candidate itineraries for one transport mode.
//
// An empty result is a valid "no service on this leg" signal, not an
// error. Errors are reserved for provider failures (network, quota);
// the aggregator degrades those to "no options" after the adapter's
// retry budget is spent.
type OptionProvider interface {
	// Mode identifies the single transport mode this provider serves.
	Mode() domain.TransportMode

	// Options returns candidate itineraries from one location to
	// another for the given departure instant. Implementations must
	// never return an option with negative cost or duration.
	Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error)
}
