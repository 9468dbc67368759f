package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "invalid_token:"

// Keys for tokens already past expiry still get a short grace TTL so the
// revocation stays observable to in-flight checks.
const minRedisTTL = time.Minute

// RedisStore keeps revoked token ids as keys expiring at the token's natural
// expiry, so Redis prunes the set on its own. RevokeMany uses a MULTI/EXEC
// pipeline, making the whole set visible at once.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Redis-backed revocation store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// IsRevoked checks key existence.
func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := s.client.Exists(ctx, redisKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count > 0, nil
}

// Revoke sets the key with a TTL reaching the token's expiry.
func (s *RedisStore) Revoke(ctx context.Context, rev Revocation) error {
	if err := s.client.Set(ctx, redisKeyPrefix+rev.TokenID, "1", ttlFor(rev.ExpiresAt)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// RevokeMany sets all keys inside one MULTI/EXEC transaction.
func (s *RedisStore) RevokeMany(ctx context.Context, revs []Revocation) error {
	if len(revs) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()
	for _, rev := range revs {
		pipe.Set(ctx, redisKeyPrefix+rev.TokenID, "1", ttlFor(rev.ExpiresAt))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func ttlFor(expiresAt time.Time) time.Duration {
	ttl := time.Until(expiresAt)
	if ttl < minRedisTTL {
		return minRedisTTL
	}
	return ttl
}
