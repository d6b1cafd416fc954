// Package cache provides the Redis-backed stores for token revocation and view deduplication.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-platform/internal/domain"
)

// RedisStore keeps short-lived keys in Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore connects to redisURL and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client), nil
}

// NewRedisStoreWithClient creates a store from an existing Redis client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "blog:",
		now:    time.Now,
	}
}

func (s *RedisStore) revokedKey(tokenID string) string {
	return s.prefix + "revoked:" + tokenID
}

func (s *RedisStore) viewerKey(contentID, userID string, day time.Time) string {
	return fmt.Sprintf("%sviewer:%s:%s:%s", s.prefix, contentID, day.Format("2006-01-02"), userID)
}

// RevokeToken marks an access token id as revoked until the token would have expired anyway.
func (s *RedisStore) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, s.revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether an access token id was revoked.
func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, s.revokedKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup revoked token: %w", err)
	}
	return true, nil
}

// MarkViewer records that userID viewed contentID today (UTC) and reports whether
// this is the first view of the day. The key expires at the end of the day.
func (s *RedisStore) MarkViewer(ctx context.Context, contentID, userID string) (bool, error) {
	now := s.now()
	day := domain.StartOfUTCDay(now)
	ttl := day.Add(24 * time.Hour).Sub(now)

	first, err := s.client.SetNX(ctx, s.viewerKey(contentID, userID, day), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark viewer: %w", err)
	}
	return first, nil
}

// ForgetViewer clears today's mark for userID on contentID.
func (s *RedisStore) ForgetViewer(ctx context.Context, contentID, userID string) error {
	day := domain.StartOfUTCDay(s.now())
	if err := s.client.Del(ctx, s.viewerKey(contentID, userID, day)).Err(); err != nil {
		return fmt.Errorf("forget viewer: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks if Redis is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
