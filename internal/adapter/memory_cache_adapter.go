package adapter

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"ndmedia/internal/domain"
)

// MemoryCacheAdapter implements domain.Cache inside the process on top of a
// ttlcache. Expired entries are invisible to Get and are removed by the
// cleanup loop that Start runs.
type MemoryCacheAdapter struct {
	cache *ttlcache.Cache[string, string]
}

// NewMemoryCacheAdapter creates an empty in-process cache.
func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{cache: ttlcache.New[string, string]()}
}

// itemTTL maps the redis convention (0 keeps the key forever) onto ttlcache.
func itemTTL(expiration time.Duration) time.Duration {
	if expiration <= 0 {
		return ttlcache.NoTTL
	}
	return expiration
}

func (m *MemoryCacheAdapter) Get(_ context.Context, key string) (string, error) {
	item := m.cache.Get(key, ttlcache.WithDisableTouchOnHit[string, string]())
	if item == nil {
		return "", domain.ErrCacheMiss
	}
	return item.Value(), nil
}

func (m *MemoryCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	m.cache.Set(key, value, itemTTL(expiration))
	return nil
}

func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

// Expire restarts the key's countdown. A hit on Get already extends the item
// by its own TTL; only a different expiration needs the value stored again.
func (m *MemoryCacheAdapter) Expire(_ context.Context, key string, expiration time.Duration) error {
	item := m.cache.Get(key)
	if item == nil {
		return domain.ErrCacheMiss
	}
	if ttl := itemTTL(expiration); item.TTL() != ttl {
		m.cache.Set(key, item.Value(), ttl)
	}
	return nil
}

func (m *MemoryCacheAdapter) Ping(context.Context) error {
	return nil
}

// Start runs the expiry cleanup loop and blocks until Stop is called.
func (m *MemoryCacheAdapter) Start() {
	m.cache.Start()
}

// Stop ends the loop started by Start.
func (m *MemoryCacheAdapter) Stop() {
	m.cache.Stop()
}

// Len is the number of stored entries, including expired ones not yet
// cleaned up.
func (m *MemoryCacheAdapter) Len() int {
	return m.cache.Len()
}
