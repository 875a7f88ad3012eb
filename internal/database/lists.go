package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisListStore adapts a Redis client to the list operations the menu
// service needs. Each operation maps to a single Redis command, so each
// is individually atomic.
type RedisListStore struct {
	client *redis.Client
}

// NewRedisListStore creates a list store backed by the given client
func NewRedisListStore(client *redis.Client) *RedisListStore {
	return &RedisListStore{client: client}
}

// Range returns every value stored under key, head first
func (s *RedisListStore) Range(ctx context.Context, key string) ([]string, error) {
	values, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read list %s: %w", key, err)
	}
	return values, nil
}

// Push prepends value to the list under key
func (s *RedisListStore) Push(ctx context.Context, key, value string) error {
	if err := s.client.LPush(ctx, key, value).Err(); err != nil {
		return fmt.Errorf("failed to push to list %s: %w", key, err)
	}
	return nil
}

// Remove deletes a single occurrence of value from the list under key
func (s *RedisListStore) Remove(ctx context.Context, key, value string) error {
	if err := s.client.LRem(ctx, key, 1, value).Err(); err != nil {
		return fmt.Errorf("failed to remove from list %s: %w", key, err)
	}
	return nil
}

// Delete drops the entire list under key
func (s *RedisListStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete list %s: %w", key, err)
	}
	return nil
}

// RedisSessionLocker serializes menu mutations for a session using a
// SET NX lock key with a TTL, so a crashed holder cannot wedge the
// session forever.
type RedisSessionLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionLocker creates a session locker with the given lock TTL
func NewRedisSessionLocker(client *redis.Client, ttl time.Duration) *RedisSessionLocker {
	return &RedisSessionLocker{client: client, ttl: ttl}
}

// Acquire blocks until the session lock is held or ctx expires. The
// returned release function is safe to call exactly once.
func (l *RedisSessionLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	key := "menu_lock:" + sessionID

	for {
		ok, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire session lock: %w", err)
		}
		if ok {
			return func() {
				l.client.Del(context.Background(), key)
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(25 * time.Millisecond):
		}
	}
}
