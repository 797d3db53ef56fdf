package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "session:cart:"

// RedisStore はカートをRedisにJSONで保存する。
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, sid string) ([]model.CartLine, error) {
	payload, err := s.client.Get(ctx, s.keyPrefix+sid).Bytes()
	if errors.Is(err, redis.Nil) {
		// キーが無い＝空カート
		return []model.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}

	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	// 書くたびにTTLを延ばす
	return s.client.Set(ctx, s.keyPrefix+sid, payload, s.ttl).Err()
}
