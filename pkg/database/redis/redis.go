package redis

import (
	"context"
	"fmt"
	"time"

	"bobTheBar/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Options derives client options from config. Read and write timeouts stay
// well under the request timeout so a slow cache falls through to the store.
func Options(cfg *config.Config) *redis.Options {
	ioTimeout := 500 * time.Millisecond
	if rt := cfg.Server.RequestTimeout; rt > 0 && rt/4 < ioTimeout {
		ioTimeout = rt / 4
	}

	return &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Redis.RedisHost, cfg.Redis.RedisPort),
		Password:     cfg.Redis.RedisPassword,
		DB:           cfg.Redis.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}
}

// NewRedisClient connects the catalog cache client. It is only called when a
// catalog TTL is configured.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.CatalogTTL <= 0 {
		return nil, fmt.Errorf("catalog cache disabled: ttl is %v", cfg.Redis.CatalogTTL)
	}

	client := redis.NewClient(Options(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// CloseRedisClient closes the Redis connection
func CloseRedisClient(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}

	return nil
}
