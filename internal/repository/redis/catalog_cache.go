package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:bottles:all"

// CatalogSource is the store the cache reads through to.
type CatalogSource interface {
	FindAll(ctx context.Context) ([]domain.Bottle, error)
}

// CatalogCache is a read-through cache of the full catalog. Cache errors are
// logged and fall through to the source; only source errors are returned.
type CatalogCache struct {
	client *redis.Client
	source CatalogSource
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, source CatalogSource, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (c *CatalogCache) FindAll(ctx context.Context) ([]domain.Bottle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if bottles, ok := c.get(ctx); ok {
		return bottles, nil
	}

	bottles, err := c.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, bottles); err != nil {
		logger.Warn("failed to store catalog in cache", err)
	}

	return bottles, nil
}

// Invalidate drops the cached catalog so the next read goes to the source.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to delete catalog from Redis: %w", err)
	}
	return nil
}

func (c *CatalogCache) get(ctx context.Context) ([]domain.Bottle, bool) {
	val, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("failed to get catalog from Redis", err)
		}
		return nil, false
	}

	var bottles []domain.Bottle
	if err := json.Unmarshal(val, &bottles); err != nil {
		logger.Warn("failed to unmarshal cached catalog", err)
		return nil, false
	}

	return bottles, true
}

func (c *CatalogCache) set(ctx context.Context, bottles []domain.Bottle) error {
	jsonData, err := json.Marshal(bottles)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store catalog in Redis: %w", err)
	}

	return nil
}
