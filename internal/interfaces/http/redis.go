package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	sharedConfig "github.com/ledgerpos/ledgerpos/internal/shared/config"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// newRedisClient returns nil when redis is disabled or unreachable; callers
// fall back to their database or in-memory paths.
func newRedisClient(cfg *sharedConfig.RedisConfig, log logger.Interface) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, continuing without it", "addr", cfg.GetAddr(), "error", err)
		_ = client.Close()
		return nil
	}

	log.Infow("redis connected", "addr", cfg.GetAddr())
	return client
}
