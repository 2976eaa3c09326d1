//go:build integration

package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func TestRedisStore_Integration(t *testing.T) {
	ctx := context.Background()

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, testcontainers.TerminateContainer(redisContainer))
	}()

	endpoint, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	defer client.Close()

	store := NewRedisStore(client, zap.NewNop())

	t.Run("MarkProcessed and IsProcessed", func(t *testing.T) {
		processed, err := store.IsProcessed(ctx, "payment-1:tx-1")
		require.NoError(t, err)
		require.False(t, processed)

		require.NoError(t, store.MarkProcessed(ctx, "payment-1:tx-1", time.Hour))
		require.NoError(t, store.MarkProcessed(ctx, "payment-1:tx-1", time.Hour))

		processed, err = store.IsProcessed(ctx, "payment-1:tx-1")
		require.NoError(t, err)
		require.True(t, processed)

		ttl, err := client.TTL(ctx, processedKey("payment-1:tx-1")).Result()
		require.NoError(t, err)
		require.Greater(t, ttl, time.Duration(0))
	})

	t.Run("Claim is exclusive and Release frees only a claim", func(t *testing.T) {
		claimed, err := store.Claim(ctx, "payment-2:tx-1", time.Minute)
		require.NoError(t, err)
		require.True(t, claimed)

		claimed, err = store.Claim(ctx, "payment-2:tx-1", time.Minute)
		require.NoError(t, err)
		require.False(t, claimed)

		processed, err := store.IsProcessed(ctx, "payment-2:tx-1")
		require.NoError(t, err)
		require.False(t, processed)

		require.NoError(t, store.Release(ctx, "payment-2:tx-1"))
		claimed, err = store.Claim(ctx, "payment-2:tx-1", time.Minute)
		require.NoError(t, err)
		require.True(t, claimed)

		require.NoError(t, store.MarkProcessed(ctx, "payment-2:tx-1", time.Hour))
		require.NoError(t, store.Release(ctx, "payment-2:tx-1"))
		processed, err = store.IsProcessed(ctx, "payment-2:tx-1")
		require.NoError(t, err)
		require.True(t, processed)
	})

	t.Run("key expires", func(t *testing.T) {
		require.NoError(t, store.MarkProcessed(ctx, "short", time.Second))

		require.Eventually(t, func() bool {
			processed, err := store.IsProcessed(ctx, "short")
			return err == nil && !processed
		}, 5*time.Second, 100*time.Millisecond)
	})
}
