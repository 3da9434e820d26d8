package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ledgerpos/ledgerpos/internal/domain/connectivity"
)

const redisKeyPrefix = "ledgerpos:pref:"

// RedisStorage keeps the preference in Redis, for terminals that share a
// preference through a store-level Redis. Keys do not expire.
type RedisStorage struct {
	client    *redis.Client
	namespace string
}

// NewRedisStorage scopes keys by namespace, normally the business ID.
func NewRedisStorage(client *redis.Client, namespace string) *RedisStorage {
	return &RedisStorage{client: client, namespace: namespace}
}

func (s *RedisStorage) buildKey(key string) string {
	return redisKeyPrefix + s.namespace + ":" + key
}

func (s *RedisStorage) Load(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.buildKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", connectivity.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("%w: %v", connectivity.ErrStorageUnavailable, err)
	}
	return v, nil
}

func (s *RedisStorage) Save(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.buildKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", connectivity.ErrStorageUnavailable, err)
	}
	return nil
}
