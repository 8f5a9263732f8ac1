package cache

import "time"

// Cache 缓存门面；TTL 以分钟为单位，0 表示永不过期
type Cache interface {
	Has(key string) (bool, error)
	Get(key string) (string, bool, error)
	Set(key, value string, ttlMinutes int) error
	Forget(key string) error
	// Remember 命中直接返回，未命中执行 producer 并写入缓存
	Remember(key string, ttlMinutes int, producer func() (string, error)) (string, error)
}

func minutes(ttlMinutes int) time.Duration {
	return time.Duration(ttlMinutes) * time.Minute
}
