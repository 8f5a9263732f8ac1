package session

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-redis/redis"
	"github.com/golang-jwt/jwt"
)

// Claims 请求携带的登录态
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("invalid session token")

// ParseUserID 从 JWT 中解析用户 id；token 无效时返回 ErrInvalidToken
func ParseUserID(tokenString, secret string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// Store 按用户保存可变会话字段（例如评论时填写的邮箱）
type Store interface {
	Get(userID uint, field string) (string, error)
	Set(userID uint, field, value string) error
}

// RedisStore 会话字段存在 session:user:<id> 哈希里
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(userID uint) string {
	return "session:user:" + strconv.FormatUint(uint64(userID), 10)
}

func (s *RedisStore) Get(userID uint, field string) (string, error) {
	val, err := s.client.HGet(sessionKey(userID), field).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisStore) Set(userID uint, field, value string) error {
	return s.client.HSet(sessionKey(userID), field, value).Err()
}

// MemoryStore 进程内会话存储，测试用
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(userID uint, field string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[sessionKey(userID)+":"+field], nil
}

func (s *MemoryStore) Set(userID uint, field, value string) error {
	s.mu.Lock()
	s.values[sessionKey(userID)+":"+field] = value
	s.mu.Unlock()
	return nil
}
