// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotCache caches serialized derived views per user. The record set is
// refetched wholesale after every mutation, so cache consistency reduces to
// one rule: every activity or budget write invalidates the owning user's
// entries. A missing or failing cache is never an error — callers recompute.
type SnapshotCache interface {
	// Get retrieves a cached snapshot. ok is false on miss or cache failure.
	Get(ctx context.Context, userID uuid.UUID, key string) (data []byte, ok bool)

	// Set stores a snapshot under the user and key. Failures are swallowed.
	Set(ctx context.Context, userID uuid.UUID, key string, data []byte)

	// InvalidateUser drops every snapshot belonging to the user.
	InvalidateUser(ctx context.Context, userID uuid.UUID)
}
