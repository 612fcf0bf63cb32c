package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"daynight-map-service/internal/domain"
)

const redisKeyPrefix = "terminator:"

// Redis-backed cache for computed terminator curves. Entries expire
// after TTL; curves go stale fast, so this backend suits deployments
// where several map instances share one recomputation.
type RedisCurveCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCurveCache(client *redis.Client, ttl time.Duration) *RedisCurveCache {
	return &RedisCurveCache{Client: client, TTL: ttl}
}

// Fetch a cached curve by key.
func (c *RedisCurveCache) Get(ctx context.Context, key string) (domain.TerminatorCurve, bool, error) {
	if c.Client == nil {
		return domain.TerminatorCurve{}, false, errors.New("curve cache: redis client is nil")
	}
	if key == "" {
		return domain.TerminatorCurve{}, false, errors.New("get curve cache: key must not be empty")
	}

	payload, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.TerminatorCurve{}, false, nil
	}
	if err != nil {
		return domain.TerminatorCurve{}, false, fmt.Errorf("get curve cache: redis get: %w", err)
	}

	curve, err := decodeCurve(payload)
	if err != nil {
		return domain.TerminatorCurve{}, false, fmt.Errorf("get curve cache: %w", err)
	}

	return curve, true, nil
}

// Store a curve under the given key with the cache TTL.
func (c *RedisCurveCache) Put(ctx context.Context, key string, curve domain.TerminatorCurve) error {
	if c.Client == nil {
		return errors.New("curve cache: redis client is nil")
	}
	if key == "" {
		return errors.New("insert curve cache: key must not be empty")
	}

	payload, err := encodeCurve(curve)
	if err != nil {
		return fmt.Errorf("insert curve cache: %w", err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert curve cache key=%q: redis set: %w", key, err)
	}

	return nil
}
