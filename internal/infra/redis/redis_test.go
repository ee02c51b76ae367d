package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestTokenDenylist(t *testing.T) {
	mr, client := newTestClient(t)
	d := NewTokenDenylist(client)
	ctx := context.Background()

	revoked, err := d.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, d.Revoke(ctx, "abc", time.Minute))
	revoked, err = d.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = d.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenDenylist_ExpiredTokenNotStored(t *testing.T) {
	mr, client := newTestClient(t)
	d := NewTokenDenylist(client)

	require.NoError(t, d.Revoke(context.Background(), "old", 0))
	assert.False(t, mr.Exists(denylistPrefix+"old"))
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	mr, client := newTestClient(t)
	l := NewRateLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, _, err := l.Allow(ctx, "login:1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, retry, err := l.Allow(ctx, "login:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Greater(t, retry, time.Duration(0))

	ok, _, err = l.Allow(ctx, "login:5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(61 * time.Second)
	ok, _, err = l.Allow(ctx, "login:1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}
