package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore keeps a denylist of revoked session token ids.
// Keys expire together with the token they revoke, so the set never grows
// past the population of live sessions.
// Key format: revoked:<jti>
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a RevocationStore wrapping the given client.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks the jti as revoked until its token would have expired.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether the jti has been revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevocationStore) key(jti string) string {
	return "revoked:" + jti
}
