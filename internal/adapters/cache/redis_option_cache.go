package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"group-trip-planner/internal/domain"
)

// RedisOptionCache stores provider results in Redis with a TTL, so
// repeated planning runs for the same legs skip the provider calls.
// Keys are exact on mode, leg, and departure instant.
type RedisOptionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOptionCache(client *redis.Client, ttl time.Duration) *RedisOptionCache {
	return &RedisOptionCache{client: client, ttl: ttl}
}

func key(mode domain.TransportMode, from, to domain.Location, departure time.Time) string {
	return fmt.Sprintf("options:%s:%s:%s:%d", mode, from.Code, to.Code, departure.UTC().Unix())
}

func (c *RedisOptionCache) Get(ctx context.Context, mode domain.TransportMode, from, to domain.Location, departure time.Time) ([]domain.TransportOption, bool, error) {
	raw, err := c.client.Get(ctx, key(mode, from, to, departure)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("option cache get: %w", err)
	}

	var opts []domain.TransportOption
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, false, fmt.Errorf("option cache get: decode cached options: %w", err)
	}

	return opts, true, nil
}

func (c *RedisOptionCache) Put(ctx context.Context, mode domain.TransportMode, from, to domain.Location, departure time.Time, options []domain.TransportOption) error {
	raw, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("option cache put: encode options: %w", err)
	}

	if err := c.client.Set(ctx, key(mode, from, to, departure), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("option cache put: %w", err)
	}

	return nil
}
