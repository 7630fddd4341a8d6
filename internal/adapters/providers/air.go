package providers

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// AirProvider synthesizes flight itineraries: the fastest mode and by
// far the most expensive. Stands in for a real fare API behind the
// same OptionProvider contract.
type AirProvider struct {
	rng      *RandSource
	currency string
}

func NewAirProvider(rng *RandSource, currency string) *AirProvider {
	return &AirProvider{rng: rng, currency: currency}
}

func (p *AirProvider) Mode() domain.TransportMode { return domain.ModeAir }

func (p *AirProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	if from.Same(to) {
		return nil, nil
	}

	carriers := []string{"NorthWind Air", "SkyLink", "Meridian Airways"}

	n := 2 + p.rng.IntN(2)
	opts := make([]domain.TransportOption, 0, n)
	for i := 0; i < n; i++ {
		duration := 90 + p.rng.IntN(240)
		cost := int64(12_000 + p.rng.IntN(40_000))

		// Roughly a third of flights connect through a hub.
		var stops []domain.Location
		if p.rng.IntN(3) == 0 {
			stops = []domain.Location{{Code: "HUB", Name: "Connecting Hub"}}
			duration += 60
		}

		opts = append(opts, newOption(domain.ModeAir, p.rng.pick(carriers), from, to, departure, duration, cost, p.currency, stops))
	}

	return opts, nil
}
