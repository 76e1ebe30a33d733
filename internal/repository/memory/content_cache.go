package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ContentCache is the in-process first level of the content cache.
type ContentCache struct {
	cache *cache.Cache
}

func NewContentCache(ttl time.Duration) *ContentCache {
	// Purge expired items every two TTLs.
	return &ContentCache{cache: cache.New(ttl, 2*ttl)}
}

func (c *ContentCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *ContentCache) Set(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *ContentCache) Flush() {
	c.cache.Flush()
}

func (c *ContentCache) ItemCount() int {
	return c.cache.ItemCount()
}
