package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zhouzirui/museum-guide/backend/internal/model/chat"
)

const redisKeyPrefix = "museum:session:"

// RedisStore keeps each session under museum:session:<id> with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore parses a redis:// URL. A zero ttl keeps keys forever.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	if url == "" {
		return nil, fmt.Errorf("redis: url is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url %s: %w", url, err)
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

// Ping 检查连接是否可用。
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) SaveSession(ctx context.Context, s chat.Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis: save session %s: %w", s.ID, err)
	}
	return nil
}

func (r *RedisStore) GetSession(ctx context.Context, id string) (chat.Session, bool, error) {
	data, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return chat.Session{}, false, nil
	}
	if err != nil {
		return chat.Session{}, false, fmt.Errorf("redis: get session %s: %w", id, err)
	}
	s, err := decode(data)
	if err != nil {
		return chat.Session{}, false, err
	}
	return s, true, nil
}

func (r *RedisStore) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis: delete session %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}
