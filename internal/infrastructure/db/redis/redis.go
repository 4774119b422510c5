package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config holds the connection settings for the session revocation store.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens the Redis client backing the revocation denylist and
// verifies it answers before handing it to callers. The configured
// timeout also bounds every dial and read on the returned client, so a
// slow Redis degrades token checks instead of hanging them.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: cfg.Timeout,
		ReadTimeout: cfg.Timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
