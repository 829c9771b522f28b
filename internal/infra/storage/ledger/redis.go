package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore key-value хранилище поверх Redis: GET/SET одного ключа
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает хранилище над указанным клиентом Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get читает значение ключа
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - redis GET %q: %v", ErrExecQuery, key, err)
	}
	return data, true, nil
}

// Set перезаписывает значение ключа без TTL
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - redis SET %q: %v", ErrExecQuery, key, err)
	}
	return nil
}
