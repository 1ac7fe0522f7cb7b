// Package redis provides a Redis-backed rate-limit store for deployments
// where multiple instances must share one view of the submission counters.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:feedback:"

// RateLimitStore implements store.RateLimitStore on a shared Redis instance.
// The window is enforced with INCR plus a NX expiry so the key's TTL is fixed
// at the first attempt of each window rather than sliding on every request.
type RateLimitStore struct {
	client *goredis.Client
}

// NewRateLimitStore wraps an existing Redis client.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Take implements store.RateLimitStore.
func (s *RateLimitStore) Take(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	rKey := keyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, rKey)
	pipe.ExpireNX(ctx, rKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if incr.Val() > int64(limit) {
		ttl, err := s.client.TTL(ctx, rKey).Result()
		if err != nil {
			return false, 0, err
		}
		if ttl < 0 {
			ttl = window
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
