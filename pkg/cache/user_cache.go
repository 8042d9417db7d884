package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// UserCacheTTL is the time-to-live for cached users.
	UserCacheTTL = 24 * time.Hour

	userCacheKeyPrefix = "user"
)

// CachedUser is the denormalized read model stored in Redis.
type CachedUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// UserCache provides structured read/write operations for user cache entries.
// Key format: "user:{userID}"
type UserCache struct {
	client *RedisClient
}

// NewUserCache creates a new UserCache backed by the given RedisClient.
func NewUserCache(r *RedisClient) *UserCache {
	return &UserCache{client: r}
}

// Get retrieves a cached user by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *UserCache) Get(ctx context.Context, userID uuid.UUID) (*CachedUser, error) {
	key := c.key(userID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}

	return &CachedUser{
		ID:       id,
		Username: vals["username"],
	}, nil
}

// Set writes a cached user as a Redis hash with a 24-hour TTL.
func (c *UserCache) Set(ctx context.Context, user *CachedUser) error {
	key := c.key(user.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", user.ID.String(),
		"username", user.Username,
	)
	pipe.Expire(ctx, key, UserCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached user.
func (c *UserCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// FlushEntities removes every user and item cache entry. Called after the
// populate operation replaces the schema contents wholesale. Session keys
// and anything else in the same Redis are left alone.
func FlushEntities(ctx context.Context, r *RedisClient) error {
	for _, prefix := range []string{userCacheKeyPrefix, itemCacheKeyPrefix} {
		iter := r.Client().Scan(ctx, 0, prefix+":*", 100).Iterator()
		for iter.Next(ctx) {
			if err := r.Client().Del(ctx, iter.Val()).Err(); err != nil {
				return fmt.Errorf("cache flush %s: %w", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("cache scan %s: %w", prefix, err)
		}
	}
	return nil
}

// key builds the Redis key: "user:{userID}"
func (c *UserCache) key(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", userCacheKeyPrefix, userID)
}
