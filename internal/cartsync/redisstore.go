package cartsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the local cart under one key per device. It is the
// shared-kiosk variant of FileStore: same blob, same overwrite semantics.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, device string) *RedisStore {
	return &RedisStore{client: client, key: RedisKey(device)}
}

// RedisKey is the key a device's cart blob lives under.
func RedisKey(device string) string { return "cart:local:" + device }

func (s *RedisStore) Load(ctx context.Context) ([]Line, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return decodeLines(b)
}

func (s *RedisStore) Save(ctx context.Context, lines []Line) error {
	b, err := encodeLines(lines)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
