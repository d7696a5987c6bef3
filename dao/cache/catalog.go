package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/config"
	"github.com/vrajpatel2451/pizzaspaceweb-sub000/configurator"
)

// CatalogCache is a read-through cache of assembled catalog snapshots.
// Snapshots are immutable per editing session, so a short TTL is enough;
// admin-side catalog edits call Evict.
type CatalogCache struct {
	redis  *redis.Client
	config *config.Config
}

func NewCatalogCache(redis *redis.Client, config *config.Config) *CatalogCache {
	return &CatalogCache{redis: redis, config: config}
}

func (c *CatalogCache) key(productID uint64) string {
	return fmt.Sprintf("catalog:product:%d", productID)
}

func (c *CatalogCache) ttl() time.Duration {
	if c.config.Catalog != nil && c.config.Catalog.CacheTTLSeconds > 0 {
		return time.Duration(c.config.Catalog.CacheTTLSeconds) * time.Second
	}
	return 5 * time.Minute
}

// Get returns the cached snapshot, or (nil, nil) on a miss. Cache errors are
// reported, not fatal; callers fall back to the database.
func (c *CatalogCache) Get(ctx context.Context, productID uint64) (*configurator.CatalogSnapshot, error) {
	raw, err := c.redis.Get(ctx, c.key(productID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snapshot configurator.CatalogSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *CatalogCache) Set(ctx context.Context, productID uint64, snapshot *configurator.CatalogSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.key(productID), raw, c.ttl()).Err()
}

func (c *CatalogCache) Evict(ctx context.Context, productID uint64) error {
	return c.redis.Del(ctx, c.key(productID)).Err()
}
