package providers

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// RailProvider synthesizes train itineraries: slower than air, a
// fraction of the price, usually with intermediate stops.
type RailProvider struct {
	rng      *RandSource
	currency string
}

func NewRailProvider(rng *RandSource, currency string) *RailProvider {
	return &RailProvider{rng: rng, currency: currency}
}

func (p *RailProvider) Mode() domain.TransportMode { return domain.ModeRail }

func (p *RailProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	if from.Same(to) {
		return nil, nil
	}

	operators := []string{"InterCity Rail", "Regional Express"}

	n := 1 + p.rng.IntN(3)
	opts := make([]domain.TransportOption, 0, n)
	for i := 0; i < n; i++ {
		duration := 180 + p.rng.IntN(420)
		cost := int64(3_000 + p.rng.IntN(9_000))

		stops := make([]domain.Location, 0, 2)
		for s := 0; s < p.rng.IntN(3); s++ {
			stops = append(stops, domain.Location{Code: "STN", Name: "Intermediate Station"})
		}

		opts = append(opts, newOption(domain.ModeRail, p.rng.pick(operators), from, to, departure, duration, cost, p.currency, stops))
	}

	return opts, nil
}
