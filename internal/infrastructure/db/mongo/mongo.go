package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Config holds the connection settings for the Lore Hub store.
// Timeout bounds both the initial dial and the verification ping.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials MongoDB, verifies the deployment answers a primary ping,
// and returns the client together with the database handle the
// repositories operate on. Callers own the client and must Disconnect it
// on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %q: %w", cfg.Database, err)
	}

	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("ping %q: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}
