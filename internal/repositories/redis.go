package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// RedisKeyPrefix namespaces the converter's keys.
const RedisKeyPrefix = "currency:"

// RedisKVRepository stores preference documents in Redis without expiration.
type RedisKVRepository struct {
	client *redis.Client
}

// NewRedisKVRepository creates a new repository instance
func NewRedisKVRepository(client *redis.Client) *RedisKVRepository {
	return &RedisKVRepository{client: client}
}

// Get fetches the value stored under key; a missing key is not an error.
func (r *RedisKVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	fullKey := RedisKeyPrefix + key

	val, err := r.client.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("redis get", "key", fullKey, "found", false)
			return nil, false, nil
		}
		logger.Log.Errorw("redis get failed", "key", fullKey, "error", err)
		return nil, false, fmt.Errorf("%w: get %s: %v", models.ErrPersistence, key, err)
	}

	logger.Log.Debugw("redis get", "key", fullKey, "found", true, "size", len(val))
	return val, true, nil
}

// Set stores value under key.
func (r *RedisKVRepository) Set(ctx context.Context, key string, value []byte) error {
	fullKey := RedisKeyPrefix + key

	err := r.client.Set(ctx, fullKey, value, 0).Err()

	logger.Log.Debugw("redis set", "key", fullKey, "size", len(value), "error", err)

	if err != nil {
		return fmt.Errorf("%w: set %s: %v", models.ErrPersistence, key, err)
	}
	return nil
}
