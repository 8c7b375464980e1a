package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urban_access/internal/models"
)

func unreachableClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCategoryKey(t *testing.T) {
	assert.Equal(t, "categories:7", categoryKey(7))
}

func TestCategoryCache_UnreachableServerReturnsErrors(t *testing.T) {
	cache := NewCategoryCache(unreachableClient(t))
	ctx := context.Background()

	_, ok, err := cache.GetAll(ctx)
	require.Error(t, err)
	assert.False(t, ok)

	_, ok, err = cache.Get(ctx, 1)
	require.Error(t, err)
	assert.False(t, ok)

	err = cache.Set(ctx, &models.Category{ID: 1, Name: "Falta de Rampa"}, time.Minute)
	assert.Error(t, err)
}

func TestNewRedisClient_PingFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, "127.0.0.1:1", "", 0)

	assert.Error(t, err)
}
