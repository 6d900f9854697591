package localcache

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisCache keeps keys in Redis under a configurable prefix. The stored keys
// belong to one client's user, so each client process needs its own prefix;
// the sync worker can point at the same instance to read audit records.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and verifies the connection with PING.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (repository.LocalCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "ping redis at %s", cfg.Addr)
	}

	logger.Info("Local cache connected to redis",
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
	)

	return newRedisCacheWithClient(client, cfg.KeyPrefix), nil
}

func newRedisCacheWithClient(client *redis.Client, prefix string) *redisCache {
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCacheMiss
		}

		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return data, nil
}

// Set stores value without expiry; the cache is cleared explicitly on logout.
func (c *redisCache) Set(ctx context.Context, key string, value []byte) error {
	return errors.Wrapf(c.client.Set(ctx, c.prefix+key, value, 0).Err(), "redis set %s", key)
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(c.client.Del(ctx, c.prefix+key).Err(), "redis del %s", key)
}

func (c *redisCache) Close() error {
	return errors.WithStack(c.client.Close())
}
