package providers

import (
	"context"
	"time"

	"group-trip-planner/internal/domain"
)

// Walking duration when origin and destination are the same place.
const walkMinutes = 10

// WalkProvider offers a single free walking option, and only when the
// origin and destination are the same location. Any real distance
// between places rules walking out entirely.
type WalkProvider struct {
	currency string
}

func NewWalkProvider(currency string) *WalkProvider {
	return &WalkProvider{currency: currency}
}

func (p *WalkProvider) Mode() domain.TransportMode { return domain.ModeWalk }

func (p *WalkProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	if !from.Same(to) {
		return nil, nil
	}

	opt := newOption(domain.ModeWalk, "On Foot", from, to, departure, walkMinutes, 0, p.currency, nil)
	return []domain.TransportOption{opt}, nil
}
