// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendlite/backend/internal/domain/entity"
)

// ActivityRepository defines the interface for activity persistence operations.
type ActivityRepository interface {
	// Create creates a new activity in the database.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves an activity by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// FindByUser retrieves all activities for a given user, ordered by
	// spent_at descending then created_at descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// Update updates an existing activity in the database.
	Update(ctx context.Context, activity *entity.Activity) error

	// Delete soft-deletes an activity from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
