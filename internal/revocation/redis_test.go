package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client), mr
}

func TestRedisStoreRevoke(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, Revocation{TokenID: "jti-1", ExpiresAt: exp}))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisStoreRevokeIdempotent(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	rev := Revocation{TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}

	require.NoError(t, store.Revoke(ctx, rev))
	require.NoError(t, store.Revoke(ctx, rev))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisStoreRevokeMany(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	err := store.RevokeMany(ctx, []Revocation{
		{TokenID: "jti-a", ExpiresAt: exp},
		{TokenID: "jti-b", ExpiresAt: exp},
	})
	require.NoError(t, err)

	for _, id := range []string{"jti-a", "jti-b"} {
		revoked, err := store.IsRevoked(ctx, id)
		require.NoError(t, err)
		assert.True(t, revoked, "token %s", id)
	}
}

func TestRedisStoreRevokeManyEmpty(t *testing.T) {
	store, _ := newRedisStore(t)
	assert.NoError(t, store.RevokeMany(context.Background(), nil))
}

func TestRedisStoreTTLTracksExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, Revocation{TokenID: "jti-1", ExpiresAt: time.Now().Add(2 * time.Hour)}))

	ttl := mr.TTL(redisKeyPrefix + "jti-1")
	assert.Greater(t, ttl, time.Hour)

	// Record for an expired token still lingers for the grace window.
	require.NoError(t, store.Revoke(ctx, Revocation{TokenID: "jti-2", ExpiresAt: time.Now().Add(-time.Hour)}))
	ttl = mr.TTL(redisKeyPrefix + "jti-2")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, minRedisTTL)
}

func TestRedisStoreFailsClosed(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	mr.Close()

	_, err := store.IsRevoked(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrUnavailable)

	err = store.Revoke(ctx, Revocation{TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = store.RevokeMany(ctx, []Revocation{{TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}})
	assert.ErrorIs(t, err, ErrUnavailable)
}
