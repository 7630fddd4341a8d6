package providers

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// CarProvider synthesizes self-drive itineraries. Cost models fuel and
// tolls only, so driving undercuts rail on short legs and loses on
// long ones.
type CarProvider struct {
	rng      *RandSource
	currency string
}

func NewCarProvider(rng *RandSource, currency string) *CarProvider {
	return &CarProvider{rng: rng, currency: currency}
}

func (p *CarProvider) Mode() domain.TransportMode { return domain.ModeCar }

func (p *CarProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	if from.Same(to) {
		return nil, nil
	}

	duration := 120 + p.rng.IntN(480)
	// Fuel scales with time on the road.
	cost := int64(2_000 + duration*8)

	opt := newOption(domain.ModeCar, "Own Vehicle", from, to, departure, duration, cost, p.currency, nil)
	return []domain.TransportOption{opt}, nil
}
