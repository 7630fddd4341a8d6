package providers

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// TaxiProvider synthesizes metered taxi rides. Metered pricing makes
// long legs prohibitively expensive, which is exactly the trade-off
// the selector should see.
type TaxiProvider struct {
	rng      *RandSource
	currency string
}

func NewTaxiProvider(rng *RandSource, currency string) *TaxiProvider {
	return &TaxiProvider{rng: rng, currency: currency}
}

func (p *TaxiProvider) Mode() domain.TransportMode { return domain.ModeTaxi }

func (p *TaxiProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	if from.Same(to) {
		return nil, nil
	}

	duration := 100 + p.rng.IntN(440)
	cost := int64(5_000 + duration*30)

	opt := newOption(domain.ModeTaxi, "City Cabs", from, to, departure, duration, cost, p.currency, nil)
	return []domain.TransportOption{opt}, nil
}
