package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero 表示不过期
}

// MemoryCache 进程内缓存，用于测试和未配置 Redis 的部署
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// SetClock 替换时钟，测试中用来模拟 TTL 过期
func (c *MemoryCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func (c *MemoryCache) lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (c *MemoryCache) Has(key string) (bool, error) {
	_, ok := c.lookup(key)
	return ok, nil
}

func (c *MemoryCache) Get(key string) (string, bool, error) {
	val, ok := c.lookup(key)
	return val, ok, nil
}

func (c *MemoryCache) Set(key, value string, ttlMinutes int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{value: value}
	if ttlMinutes > 0 {
		e.expiresAt = c.now().Add(minutes(ttlMinutes))
	}
	c.entries[key] = e
	return nil
}

func (c *MemoryCache) Forget(key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Remember(key string, ttlMinutes int, producer func() (string, error)) (string, error) {
	if val, ok := c.lookup(key); ok {
		return val, nil
	}
	val, err := producer()
	if err != nil {
		return "", err
	}
	if err := c.Set(key, val, ttlMinutes); err != nil {
		return "", err
	}
	return val, nil
}
