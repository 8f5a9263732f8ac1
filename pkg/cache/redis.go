package cache

import (
	"github.com/go-redis/redis"
)

// RedisCache 基于 Redis 的缓存实现
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Has(key string) (bool, error) {
	n, err := c.client.Exists(key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *RedisCache) Get(key string) (string, bool, error) {
	val, err := c.client.Get(key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(key, value string, ttlMinutes int) error {
	return c.client.Set(key, value, minutes(ttlMinutes)).Err()
}

func (c *RedisCache) Forget(key string) error {
	return c.client.Del(key).Err()
}

func (c *RedisCache) Remember(key string, ttlMinutes int, producer func() (string, error)) (string, error) {
	val, ok, err := c.Get(key)
	if err != nil {
		return "", err
	}
	if ok {
		return val, nil
	}
	val, err = producer()
	if err != nil {
		return "", err
	}
	if err := c.Set(key, val, ttlMinutes); err != nil {
		return "", err
	}
	return val, nil
}
