package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Keys for the public listing caches.
const (
	KeyPublicPackages = "public:packages"
	KeyPublicMedia    = "public:media"
)

const defaultTTL = 60 * time.Second

// Cache is a read-through layer over Redis for the public listing endpoints.
// A nil *Cache or an unreachable Redis degrades to hitting the database
// every time; cache failures are never surfaced to the request.
type Cache struct {
	client *redis.Client
}

// New pings Redis once; on failure it returns nil and the caller runs
// uncached.
func New(addr string) *Cache {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, caching disabled: %v", err)
		return nil
	}
	return &Cache{client: client}
}

// GetJSON unmarshals the cached value into dest, reporting whether it hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, b, defaultTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// Invalidate drops keys after an admin write so the public site never serves
// a stale listing past the write.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate: %v", err)
	}
}
