// Package cache keeps rate table snapshots in redis so every instance starts from the same rates.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/teminat_takip/internal/core/domain"
	portsrepo "github.com/SscSPs/teminat_takip/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const defaultNamespace = "teminat"

// RedisRateCache stores the rate rows as one JSON document under a single key.
type RedisRateCache struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisRateCache creates a cache that expires entries after ttl (0 keeps them forever).
func NewRedisRateCache(client redis.UniversalClient, ttl time.Duration) *RedisRateCache {
	return &RedisRateCache{client: client, key: defaultNamespace + ":rate_table", ttl: ttl}
}

var _ portsrepo.RateTableCache = (*RedisRateCache)(nil)

// GetRates implements RateTableCache.
func (c *RedisRateCache) GetRates(ctx context.Context) ([]domain.ExchangeRate, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached rates: %w", err)
	}

	var rates []domain.ExchangeRate
	if err := json.Unmarshal(raw, &rates); err != nil {
		// a corrupt entry is dropped so the next load repopulates it
		_ = c.client.Del(ctx, c.key).Err()
		return nil, false, fmt.Errorf("failed to decode cached rates: %w", err)
	}
	return rates, true, nil
}

// SetRates implements RateTableCache.
func (c *RedisRateCache) SetRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	raw, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rates: %w", err)
	}
	return nil
}

// Invalidate implements RateTableCache.
func (c *RedisRateCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached rates: %w", err)
	}
	return nil
}
