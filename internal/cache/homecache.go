package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"casafront/internal/models"
)

const (
	keyPopular = "home:popular"
	keyLatest  = "home:latest"
)

// HomeCache keeps the home-page feeds warm between visits. With no redis
// configured it degrades to a no-op and the store always hits the backend.
type HomeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewHomeCache creates a cache over an optional redis client.
func NewHomeCache(rdb *redis.Client, ttl time.Duration) *HomeCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &HomeCache{rdb: rdb, ttl: ttl}
}

// GetFeeds loads cached popular/new feeds. ok is false on miss, absence of
// redis, or stale/corrupt payloads.
func (c *HomeCache) GetFeeds(ctx context.Context) (popular, latest []models.Publication, ok bool) {
	if c == nil || c.rdb == nil {
		return nil, nil, false
	}
	popRaw, err := c.rdb.Get(ctx, keyPopular).Bytes()
	if err != nil {
		return nil, nil, false
	}
	newRaw, err := c.rdb.Get(ctx, keyLatest).Bytes()
	if err != nil {
		return nil, nil, false
	}
	if json.Unmarshal(popRaw, &popular) != nil || json.Unmarshal(newRaw, &latest) != nil {
		return nil, nil, false
	}
	return popular, latest, true
}

// SetFeeds stores both feeds with the configured TTL. Failures are ignored;
// the cache is best effort.
func (c *HomeCache) SetFeeds(ctx context.Context, popular, latest []models.Publication) {
	if c == nil || c.rdb == nil {
		return
	}
	popRaw, err := json.Marshal(popular)
	if err != nil {
		return
	}
	newRaw, err := json.Marshal(latest)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, keyPopular, popRaw, c.ttl)
	c.rdb.Set(ctx, keyLatest, newRaw, c.ttl)
}

// Invalidate drops both feeds, used by the refresh path.
func (c *HomeCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, keyPopular, keyLatest)
}
