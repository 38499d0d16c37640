package redis

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	bottles []domain.Bottle
	err     error
	calls   int
}

func (s *stubSource) FindAll(ctx context.Context) ([]domain.Bottle, error) {
	s.calls++
	return s.bottles, s.err
}

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCatalogCache_FallsBackToSourceWhenRedisIsDown(t *testing.T) {
	logger.SetOutput(io.Discard)

	client := unreachableClient()
	defer client.Close()

	src := &stubSource{bottles: []domain.Bottle{{ID: "a", Name: "Ardbeg"}}}
	cache := NewCatalogCache(client, src, time.Minute)

	got, err := cache.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, src.bottles, got)
	assert.Equal(t, 1, src.calls)

	assert.Error(t, cache.Invalidate(context.Background()))
}

func TestCatalogCache_SourceErrorIsReturned(t *testing.T) {
	logger.SetOutput(io.Discard)

	client := unreachableClient()
	defer client.Close()

	cause := errors.New("db down")
	_, err := NewCatalogCache(client, &stubSource{err: cause}, time.Minute).FindAll(context.Background())
	assert.ErrorIs(t, err, cause)
}
