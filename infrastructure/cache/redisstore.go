package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

const redisKeyPrefix = "report:"

// RedisStore keeps cache entries in Redis, delegating expiry to the
// server-side TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context, addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.L.WithError(err).WithField("key", key).Warn("cache read failed, treating as miss")
		}
		return nil, false
	}

	return payload, true
}

func (s *RedisStore) Set(ctx context.Context, key string, payload []byte) {
	if err := s.client.Set(ctx, redisKeyPrefix+key, payload, s.ttl).Err(); err != nil {
		log.L.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (s *RedisStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("deleting cache entry: %w", err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("scanning cache entries: %w", err)
	}

	return nil
}
