package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/ports"
)

// Aggregator fans option lookups out to mode provider adapters and
// merges the results in ascending cost order.
//
// A provider error degrades to "no options from that adapter": the
// retry budget lives at the adapter boundary, so by the time an error
// reaches the aggregator it is final for this run, and one flaky mode
// must not sink the whole aggregation.
type Aggregator struct {
	providers []ports.OptionProvider
	logger    *slog.Logger
}

// NewAggregator builds an aggregator over the given providers.
// Provider order is preserved and fixes the tie-break order of the
// cost sort.
func NewAggregator(logger *slog.Logger, providers ...ports.OptionProvider) *Aggregator {
	return &Aggregator{
		providers: providers,
		logger:    logger,
	}
}

// GetOptions returns all candidate itineraries for a leg, cheapest
// first. A zero-value modeFilter queries every provider; otherwise
// only the matching provider is queried. An empty result means the
// destination is unreachable for the requested mode(s), a legitimate
// outcome, not an error.
func (a *Aggregator) GetOptions(
	ctx context.Context,
	from, to domain.Location,
	departure time.Time,
	modeFilter domain.TransportMode,
) ([]domain.TransportOption, error) {
	if !from.Valid() {
		return nil, fmt.Errorf("get options: origin location has no code: %w", ErrInvalidInput)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("get options: destination location has no code: %w", ErrInvalidInput)
	}

	merged := []domain.TransportOption{}
	for _, p := range a.providers {
		if modeFilter != "" && p.Mode() != modeFilter {
			continue
		}

		opts, err := p.Options(ctx, from, to, departure)
		if err != nil {
			// Degrade this adapter to "no options"; the rest
			// of the aggregation proceeds.
			a.logger.Warn("provider degraded to no options",
				slog.String("mode", string(p.Mode())),
				slog.String("from", from.Code),
				slog.String("to", to.Code),
				slog.String("error", err.Error()),
			)
			continue
		}

		for _, o := range opts {
			if err := o.Validate(); err != nil {
				a.logger.Warn("provider returned invalid option, skipping",
					slog.String("mode", string(p.Mode())),
					slog.String("error", err.Error()),
				)
				continue
			}
			merged = append(merged, o)
		}
	}

	// Stable sort keeps adapter order among equal-cost options, which
	// downstream tie-breaks depend on.
	slices.SortStableFunc(merged, func(x, y domain.TransportOption) int {
		if x.CostCents < y.CostCents {
			return -1
		}
		if x.CostCents > y.CostCents {
			return 1
		}
		return 0
	})

	return merged, nil
}
