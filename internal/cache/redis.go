package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"urban_access/internal/models"
	"urban_access/internal/services"
)

const allCategoriesKey = "categories:all"

var _ services.CategoryCache = (*CategoryCache)(nil)

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

// CategoryCache stores categories as JSON under categories:all and categories:<id>.
type CategoryCache struct {
	client redis.Cmdable
}

func NewCategoryCache(client redis.Cmdable) *CategoryCache {
	return &CategoryCache{client: client}
}

func categoryKey(id uint) string {
	return fmt.Sprintf("categories:%d", id)
}

func (c *CategoryCache) GetAll(ctx context.Context) ([]models.Category, bool, error) {
	var categories []models.Category
	ok, err := c.get(ctx, allCategoriesKey, &categories)
	if !ok || err != nil {
		return nil, false, err
	}
	return categories, true, nil
}

func (c *CategoryCache) SetAll(ctx context.Context, categories []models.Category, ttl time.Duration) error {
	return c.set(ctx, allCategoriesKey, categories, ttl)
}

func (c *CategoryCache) Get(ctx context.Context, id uint) (*models.Category, bool, error) {
	var category models.Category
	ok, err := c.get(ctx, categoryKey(id), &category)
	if !ok || err != nil {
		return nil, false, err
	}
	return &category, true, nil
}

func (c *CategoryCache) Set(ctx context.Context, category *models.Category, ttl time.Duration) error {
	return c.set(ctx, categoryKey(category.ID), category, ttl)
}

func (c *CategoryCache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

func (c *CategoryCache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := c.client.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s to cache: %w", key, err)
	}
	return nil
}
