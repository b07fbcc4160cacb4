package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/qvema/qvema-api/internal/core/ports"
	"github.com/qvema/qvema-api/internal/infrastructure/metrics"
)

const (
	cleanupInterval = 5 * time.Minute
	entryTTL        = 10 * time.Minute
)

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LocalLimiter is an in-process token bucket per key. It serves when Redis
// is not configured and as the fallback when Redis errors.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	every    rate.Limit
	burst    int
	now      func() time.Time
}

var _ ports.RateLimiter = (*LocalLimiter)(nil)

func NewLocalLimiter(perMinute int) *LocalLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &LocalLimiter{
		limiters: make(map[string]*limiterEntry),
		every:    rate.Limit(float64(perMinute) / 60),
		burst:    perMinute,
		now:      time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (ports.RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastAccess = now

	r := entry.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay > 0 {
		r.CancelAt(now)
		return ports.RateLimitResult{Allowed: false, RetryAfter: delay}, nil
	}

	remaining := int(entry.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return ports.RateLimitResult{Allowed: true, Remaining: remaining}, nil
}

// Sweep drops keys idle for longer than entryTTL.
func (l *LocalLimiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-entryTTL)
	for key, entry := range l.limiters {
		if entry.lastAccess.Before(cutoff) {
			delete(l.limiters, key)
		}
	}
}

// RunSweeper calls Sweep periodically until ctx is done.
func (l *LocalLimiter) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

// LoginThrottle limits requests per client IP. primary may be nil; when it
// fails the fallback decides, and when both fail the request goes through.
func LoginThrottle(primary, fallback ports.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ratelimit:login:" + c.RealIP()
			ctx := c.Request().Context()

			var (
				res ports.RateLimitResult
				err error
			)
			if primary != nil {
				res, err = primary.Allow(ctx, key)
			}
			if primary == nil || err != nil {
				if err != nil {
					log.Warn().Err(err).Str("key", key).Msg("rate limiter error, using local fallback")
				}
				res, err = fallback.Allow(ctx, key)
			}
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter error, failing open")
				return next(c)
			}

			if !res.Allowed {
				retryAfter := int(res.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				metrics.LoginAttemptsTotal.WithLabelValues("rate_limited").Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			return next(c)
		}
	}
}
