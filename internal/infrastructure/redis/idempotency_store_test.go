package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-orders-api/internal/infrastructure/redis"
	"github.com/jhoicas/inventory-orders-api/pkg/config"
)

func newStore(t *testing.T) *redis.IdempotencyStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client, err := redis.NewClient(context.Background(), config.RedisConfig{Addr: addr})
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewIdempotencyStore(client, time.Minute)
}

func TestIdempotencyStore_ReserveOnce(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	key := uuid.NewString()

	ok, err := store.Reserve(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "la segunda reserva debe fallar")

	require.NoError(t, store.Release(ctx, key))
	ok, err = store.Reserve(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok, "tras liberar se puede reservar de nuevo")
	_ = store.Release(ctx, key)
}
