package providers

import (
	"context"
	"fmt"
	"time"

	"group-trip-planner/internal/domain"
	"group-trip-planner/internal/platform/obs"
	"group-trip-planner/internal/ports"
)

// RetryingProvider wraps another OptionProvider with bounded
// exponential backoff, honoring context cancellation between attempts.
//
// When the retry budget is spent the last error is returned; the
// aggregator degrades that to "no options" for this adapter, so a
// flaky provider costs one mode, never the whole run. The synthetic
// adapters never fail, but real provider integrations sit behind this
// same wrapper.
type RetryingProvider struct {
	inner          ports.OptionProvider
	maxAttempts    int
	initialBackoff time.Duration
}

func WithRetry(inner ports.OptionProvider, maxAttempts int, initialBackoff time.Duration) *RetryingProvider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryingProvider{
		inner:          inner,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}
}

func (r *RetryingProvider) Mode() domain.TransportMode { return r.inner.Mode() }

func (r *RetryingProvider) Options(ctx context.Context, from, to domain.Location, departure time.Time) ([]domain.TransportOption, error) {
	backoff := r.initialBackoff

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		opts, err := r.inner.Options(ctx, from, to, departure)
		if err == nil {
			return opts, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}
		obs.ObserveProviderRetry(string(r.inner.Mode()))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, fmt.Errorf("options %s after %d attempts: %w", r.inner.Mode(), r.maxAttempts, lastErr)
}
