package ports

import (
	"context"
	"time"
)

// RateLimitResult is the outcome of one limiter check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter throttles by an arbitrary key (client IP for logins).
type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}
