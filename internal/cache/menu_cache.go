package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/freshserve/backend-go/internal/config"
	"github.com/freshserve/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const menuCacheKey = "menu:current"

// MenuCache caches the computed menu. The menu is the hot read of the system
// and recomputing it walks every recipe against every lot, so writes to
// inventory, recipes or orders invalidate it.
type MenuCache interface {
	Get(ctx context.Context) ([]domain.MenuItem, bool, error)
	Set(ctx context.Context, items []domain.MenuItem) error
	Invalidate(ctx context.Context) error
}

type redisMenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopMenuCache struct{}

func NewMenuCache(cfg config.CacheConfig) (MenuCache, error) {
	if !cfg.Enabled {
		return &noopMenuCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisMenuCache{client: client, ttl: ttl}, nil
}

func NewNoopMenuCache() MenuCache {
	return &noopMenuCache{}
}

func (c *redisMenuCache) Get(ctx context.Context) ([]domain.MenuItem, bool, error) {
	payload, err := c.client.Get(ctx, menuCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false, fmt.Errorf("decode menu cache: %w", err)
	}

	return items, true, nil
}

func (c *redisMenuCache) Set(ctx context.Context, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode menu cache: %w", err)
	}

	if err := c.client.Set(ctx, menuCacheKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisMenuCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, menuCacheKey).Err()
}

func (n *noopMenuCache) Get(ctx context.Context) ([]domain.MenuItem, bool, error) {
	return nil, false, nil
}

func (n *noopMenuCache) Set(ctx context.Context, items []domain.MenuItem) error {
	return nil
}

func (n *noopMenuCache) Invalidate(ctx context.Context) error {
	return nil
}
