// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spendlite/backend/internal/application/adapter"
)

// snapshotCache implements adapter.SnapshotCache on Redis. All entries for a
// user share the "snapshot:<userID>:" prefix so invalidation can drop them
// with a single scan. Cache failures are logged and treated as misses.
type snapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a Redis-backed snapshot cache.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) adapter.SnapshotCache {
	return &snapshotCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cached snapshot. ok is false on miss or cache failure.
func (c *snapshotCache) Get(ctx context.Context, userID uuid.UUID, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.cacheKey(userID, key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("Snapshot cache read failed", "error", err, "key", key)
		}
		return nil, false
	}
	return data, true
}

// Set stores a snapshot under the user and key. Failures are swallowed.
func (c *snapshotCache) Set(ctx context.Context, userID uuid.UUID, key string, data []byte) {
	if err := c.client.Set(ctx, c.cacheKey(userID, key), data, c.ttl).Err(); err != nil {
		slog.Warn("Snapshot cache write failed", "error", err, "key", key)
	}
}

// InvalidateUser drops every snapshot belonging to the user.
func (c *snapshotCache) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	pattern := "snapshot:" + userID.String() + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("Snapshot cache scan failed", "error", err, "user_id", userID)
		return
	}

	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("Snapshot cache invalidation failed", "error", err, "user_id", userID)
	}
}

func (c *snapshotCache) cacheKey(userID uuid.UUID, key string) string {
	return "snapshot:" + userID.String() + ":" + key
}
