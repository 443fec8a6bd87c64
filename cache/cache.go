package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache holds short-lived probe results such as the warehouse ping.
type Cache struct {
	cache *cache.Cache
}

// New creates a cache whose entries expire after ttl. A ttl <= 0 keeps
// nothing, so every lookup misses.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{cache: cache.New(time.Nanosecond, 0)}
	}
	return &Cache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) SetDefault(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

// Remember returns the cached value for key, computing and storing it with
// load on a miss.
func (c *Cache) Remember(key string, load func() interface{}) interface{} {
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := load()
	c.SetDefault(key, v)
	return v
}
