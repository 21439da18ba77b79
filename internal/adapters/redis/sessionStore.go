package redisadapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	sessionPort "github.com/Bishopxxx/Bishop-blog/internal/ports/session"
)

const keyPrefix = "session:"

// SessionStoreRedis implements the token store port on redis. Expiry is
// delegated to the per-key TTL.
type SessionStoreRedis struct {
	client *redis.Client
}

func NewSessionStoreRedis(client *redis.Client) *SessionStoreRedis {
	return &SessionStoreRedis{client: client}
}

func (s *SessionStoreRedis) Save(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+token, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *SessionStoreRedis) Get(ctx context.Context, token string) (uint, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return 0, sessionPort.ErrNoSession
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return uint(id), nil
}

func (s *SessionStoreRedis) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
