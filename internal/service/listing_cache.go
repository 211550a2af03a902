package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	featuredCacheKey = "cache:properties:featured"
	featuredCacheTTL = time.Minute
)

// ListingCache keeps the featured-listings page in Redis so the busiest public
// endpoint does not hit Postgres on every request. A nil cache is a no-op.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache builds the cache around an existing client.
func NewListingCache(client *redis.Client) *ListingCache {
	if client == nil {
		return nil
	}
	return &ListingCache{client: client}
}

// GetFeatured returns the cached page, or (nil, false) on miss or error.
func (c *ListingCache) GetFeatured(ctx context.Context) ([]PropertyWithAgent, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, featuredCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []PropertyWithAgent
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// SetFeatured stores the page with a short TTL.
func (c *ListingCache) SetFeatured(ctx context.Context, items []PropertyWithAgent) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, featuredCacheKey, raw, featuredCacheTTL).Err()
}

// Invalidate drops the cached page after any listing write.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, featuredCacheKey).Err()
}
