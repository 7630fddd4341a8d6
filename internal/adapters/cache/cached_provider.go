package cache

import (
	"context"
	"log/slog"
	"time"

	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/platform/obs"
	"group-trip-planner/internal/ports"
)

// CachedProvider checks the option cache before delegating to the
// wrapped provider. Cache failures are logged and treated as misses;
// the cache must never make a leg look unavailable.
type CachedProvider struct {
	inner  ports.OptionProvider
	cache  ports.OptionCache
	logger *slog.Logger
}

func NewCachedProvider(inner ports.OptionProvider, cache ports.OptionCache, logger *slog.Logger) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache, logger: logger}
}

func (p *CachedProvider) Mode() domain.TransportMode { return p.inner.Mode() }

func (p *CachedProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	cached, ok, err := p.cache.Get(ctx, p.inner.Mode(), from, to, departure)
	if err != nil {
		p.logger.Warn("option cache read failed",
			slog.String("mode", string(p.inner.Mode())),
			slog.String("error", err.Error()),
		)
		obs.ObserveCacheLookup("error")
	} else if ok {
		obs.ObserveCacheLookup("hit")
		return cached, nil
	} else {
		obs.ObserveCacheLookup("miss")
	}

	opts, err := p.inner.Options(ctx, from, to, departure)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Put(ctx, p.inner.Mode(), from, to, departure, opts); err != nil {
		p.logger.Warn("option cache write failed",
			slog.String("mode", string(p.inner.Mode())),
			slog.String("error", err.Error()),
		)
	}

	return opts, nil
}
