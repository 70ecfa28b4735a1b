package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fodmaplab/reintro/internal/adapters/redis"
	"github.com/fodmaplab/reintro/pkg/domain"
	"github.com/fodmaplab/reintro/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunProtocolStoreContract(t, store)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("test:protocol:"))
	ctx := context.Background()

	state := domain.NewProtocolState("user-1", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, "user-1", state))

	assert.True(t, mr.Exists("test:protocol:user-1"), "snapshot key should use the configured prefix")
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Hour))
	ctx := context.Background()

	state := domain.NewProtocolState("user-ttl", time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, "user-ttl", state))

	// Expire the key and verify the protocol is gone.
	mr.FastForward(2 * time.Hour)

	_, err := store.Load(ctx, "user-ttl")
	assert.ErrorIs(t, err, domain.ErrProtocolNotFound)
}
