package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*snapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSnapshotCache(client, 10*time.Minute).(*snapshotCache), mr
}

func TestSnapshotCacheGetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok := cache.Get(context.Background(), uuid.New(), "overview:2025-03-15")
	if ok {
		t.Error("expected miss for absent key")
	}
}

func TestSnapshotCacheSetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()

	cache.Set(ctx, userID, "overview:2025-03-15", []byte(`{"dayTotal":"175"}`))

	data, ok := cache.Get(ctx, userID, "overview:2025-03-15")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(data) != `{"dayTotal":"175"}` {
		t.Errorf("unexpected cached data: %s", data)
	}
}

func TestSnapshotCacheInvalidateUser(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	cache.Set(ctx, userID, "overview:2025-03-15", []byte("a"))
	cache.Set(ctx, userID, "breakdown:2025-03", []byte("b"))
	cache.Set(ctx, otherID, "overview:2025-03-15", []byte("c"))

	cache.InvalidateUser(ctx, userID)

	if _, ok := cache.Get(ctx, userID, "overview:2025-03-15"); ok {
		t.Error("expected user's overview entry to be dropped")
	}
	if _, ok := cache.Get(ctx, userID, "breakdown:2025-03"); ok {
		t.Error("expected user's breakdown entry to be dropped")
	}
	if _, ok := cache.Get(ctx, otherID, "overview:2025-03-15"); !ok {
		t.Error("expected other user's entry to survive invalidation")
	}
}

func TestSnapshotCacheFailureIsMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, ok := cache.Get(context.Background(), uuid.New(), "overview:2025-03-15")
	if ok {
		t.Error("expected miss when cache is unreachable")
	}
}
