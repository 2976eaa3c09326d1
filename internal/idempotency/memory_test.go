package idempotency

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_MarkProcessed_IsProcessed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Сначала ключ не обработан
	processed, err := store.IsProcessed(ctx, "payment-1:tx-1")
	assert.NoError(t, err)
	assert.False(t, processed)

	err = store.MarkProcessed(ctx, "payment-1:tx-1", time.Hour)
	assert.NoError(t, err)

	processed, err = store.IsProcessed(ctx, "payment-1:tx-1")
	assert.NoError(t, err)
	assert.True(t, processed)

	// Другой ключ не затронут
	processed, err = store.IsProcessed(ctx, "payment-1:tx-2")
	assert.NoError(t, err)
	assert.False(t, processed)
}

func TestMemoryStore_Claim(t *testing.T) {
	ctx := context.Background()

	t.Run("second claim fails until release", func(t *testing.T) {
		store := NewMemoryStore()

		claimed, err := store.Claim(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.True(t, claimed)

		claimed, err = store.Claim(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.False(t, claimed)

		// Захват - ещё не обработка
		processed, err := store.IsProcessed(ctx, "k")
		require.NoError(t, err)
		require.False(t, processed)

		require.NoError(t, store.Release(ctx, "k"))
		claimed, err = store.Claim(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.True(t, claimed)
	})

	t.Run("release keeps processed mark", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Claim(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.NoError(t, store.MarkProcessed(ctx, "k", time.Hour))
		require.NoError(t, store.Release(ctx, "k"))

		processed, err := store.IsProcessed(ctx, "k")
		require.NoError(t, err)
		require.True(t, processed)

		claimed, err := store.Claim(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.False(t, claimed)
	})

	t.Run("exactly one concurrent claim wins", func(t *testing.T) {
		store := NewMemoryStore()
		const workers = 32

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		start := make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				claimed, err := store.Claim(ctx, "k", time.Minute)
				assert.NoError(t, err)
				if claimed {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		close(start)
		wg.Wait()

		require.Equal(t, 1, wins)
	})
}

func TestMemoryStore_TTLExpiration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	assert.NoError(t, store.MarkProcessed(ctx, "k", time.Minute))

	now = now.Add(59 * time.Second)
	processed, err := store.IsProcessed(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, processed)

	now = now.Add(time.Second)
	processed, err = store.IsProcessed(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, processed)
	assert.Empty(t, store.keys)

	// Истёкший захват можно занять снова
	claimed, err := store.Claim(ctx, "claim", time.Minute)
	assert.NoError(t, err)
	assert.True(t, claimed)
	now = now.Add(time.Minute)
	claimed, err = store.Claim(ctx, "claim", time.Minute)
	assert.NoError(t, err)
	assert.True(t, claimed)
}
