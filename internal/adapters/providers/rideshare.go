package providers

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// RideshareProvider synthesizes app-hailed rides: car timings with a
// service premium on top.
type RideshareProvider struct {
	rng      *RandSource
	currency string
}

func NewRideshareProvider(rng *RandSource, currency string) *RideshareProvider {
	return &RideshareProvider{rng: rng, currency: currency}
}

func (p *RideshareProvider) Mode() domain.TransportMode { return domain.ModeRideshare }

func (p *RideshareProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	if from.Same(to) {
		return nil, nil
	}

	services := []string{"PoolRide", "SwiftShare"}

	n := 1 + p.rng.IntN(2)
	opts := make([]domain.TransportOption, 0, n)
	for i := 0; i < n; i++ {
		duration := 120 + p.rng.IntN(480)
		cost := int64(3_500 + duration*12)

		opts = append(opts, newOption(domain.ModeRideshare, p.rng.pick(services), from, to, departure, duration, cost, p.currency, nil))
	}

	return opts, nil
}
