package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "custlysis:snapshot:"

// RedisStore keeps snapshots in a Redis hash per session so several dashboard instances can share them
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisStore{client: rdb, ttl: ttl}
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Save stores value in the session hash and refreshes the hash TTL
func (s *RedisStore) Save(ctx context.Context, session, collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", collection, err)
	}

	key := keyPrefix + session
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, collection, data)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", collection, err)
	}
	return nil
}

// Load decodes the stored collection into out
func (s *RedisStore) Load(ctx context.Context, session, collection string, out any) error {
	data, err := s.client.HGet(ctx, keyPrefix+session, collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMissing
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", collection, err)
	}
	return nil
}

// Reset discards every snapshot of the session
func (s *RedisStore) Reset(ctx context.Context, session string) error {
	if err := s.client.Del(ctx, keyPrefix+session).Err(); err != nil {
		return fmt.Errorf("failed to reset snapshots: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
