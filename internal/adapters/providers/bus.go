package providers

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// BusProvider synthesizes coach itineraries: the cheapest motorized
// mode and the slowest, with several stops along the way.
type BusProvider struct {
	rng      *RandSource
	currency string
}

func NewBusProvider(rng *RandSource, currency string) *BusProvider {
	return &BusProvider{rng: rng, currency: currency}
}

func (p *BusProvider) Mode() domain.TransportMode { return domain.ModeBus }

func (p *BusProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	if from.Same(to) {
		return nil, nil
	}

	operators := []string{"GreenLine Coaches", "TransContinental Bus"}

	n := 1 + p.rng.IntN(2)
	opts := make([]domain.TransportOption, 0, n)
	for i := 0; i < n; i++ {
		duration := 300 + p.rng.IntN(540)
		cost := int64(1_500 + p.rng.IntN(4_500))

		stops := make([]domain.Location, 0, 3)
		for s := 0; s < 1+p.rng.IntN(3); s++ {
			stops = append(stops, domain.Location{Code: "STP", Name: "Rest Stop"})
		}

		opts = append(opts, newOption(domain.ModeBus, p.rng.pick(operators), from, to, departure, duration, cost, p.currency, stops))
	}

	return opts, nil
}
