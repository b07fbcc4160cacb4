package redis

import (
	"context"
	"fmt"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/qvema/qvema-api/internal/core/ports"
)

// LoginLimiter is a GCRA limiter shared by every API replica through Redis.
type LoginLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

var _ ports.RateLimiter = (*LoginLimiter)(nil)

// NewLoginLimiter allows perMinute attempts per key, with the same burst.
func NewLoginLimiter(rdb *redis.Client, perMinute int) *LoginLimiter {
	return &LoginLimiter{
		limiter: redis_rate.NewLimiter(rdb),
		limit:   redis_rate.PerMinute(perMinute),
	}
}

func (l *LoginLimiter) Allow(ctx context.Context, key string) (ports.RateLimitResult, error) {
	res, err := l.limiter.Allow(ctx, key, l.limit)
	if err != nil {
		return ports.RateLimitResult{}, fmt.Errorf("redis rate limit: %w", err)
	}
	return ports.RateLimitResult{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}, nil
}
