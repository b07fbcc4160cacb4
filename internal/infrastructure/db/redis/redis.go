// Package redis holds the optional Redis integration: the shared login
// limiter and the client it runs on.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config is the connection settings. An empty Addr means Redis is disabled.
type Config struct {
	Addr     string
	Password string
	DB       int
}

func (c Config) Enabled() bool { return c.Addr != "" }

// Connect builds a client and pings it once; a client that cannot answer is
// closed and reported.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("redis: no address configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
