package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "braintree:processed:"

	claimedValue = "claimed"
	doneValue    = "done"
)

// releaseScript удаляет ключ, только если он всё ещё в состоянии захвата
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore - хранилище ключей в Redis (SET NX EX)
type RedisStore struct {
	client redis.Cmdable
	logger *zap.Logger
}

// NewRedisStore создаёт Redis-хранилище
func NewRedisStore(client redis.Cmdable, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

func processedKey(key string) string {
	return keyPrefix + key
}

// Claim атомарно занимает ключ на ttl. false - ключ уже занят или обработан.
func (s *RedisStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	claimed, err := s.client.SetNX(ctx, processedKey(key), claimedValue, ttl).Result()
	if err != nil {
		s.logger.Error("failed to claim key in redis",
			zap.Error(err),
			zap.String("key", key),
		)
		return false, fmt.Errorf("failed to claim: %w", err)
	}
	if !claimed {
		s.logger.Debug("key already claimed", zap.String("key", key))
	}
	return claimed, nil
}

// MarkProcessed помечает ключ обработанным на ttl, заменяя захват
func (s *RedisStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Set(ctx, processedKey(key), doneValue, ttl).Err(); err != nil {
		s.logger.Error("failed to mark key processed in redis",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("failed to mark processed: %w", err)
	}
	return nil
}

// IsProcessed проверяет, помечен ли ключ обработанным
func (s *RedisStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	value, err := s.client.Get(ctx, processedKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		s.logger.Error("failed to check processed key in redis",
			zap.Error(err),
			zap.String("key", key),
		)
		return false, fmt.Errorf("failed to check processed: %w", err)
	}
	return value == doneValue, nil
}

// Release снимает незавершённый захват; отметку об обработке не трогает
func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := releaseScript.Run(ctx, s.client, []string{processedKey(key)}, claimedValue).Err(); err != nil {
		s.logger.Error("failed to release key in redis",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("failed to release: %w", err)
	}
	return nil
}
