// Package activity contains activity-related use cases.
package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendlite/backend/internal/application/adapter"
	domainerror "github.com/spendlite/backend/internal/domain/error"
)

// DeleteActivityInput represents the input for activity deletion.
type DeleteActivityInput struct {
	ActivityID uuid.UUID
	UserID     uuid.UUID
}

// DeleteActivityUseCase handles activity deletion logic.
type DeleteActivityUseCase struct {
	activityRepo adapter.ActivityRepository
	cache        adapter.SnapshotCache
}

// NewDeleteActivityUseCase creates a new DeleteActivityUseCase instance.
func NewDeleteActivityUseCase(activityRepo adapter.ActivityRepository, cache adapter.SnapshotCache) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{
		activityRepo: activityRepo,
		cache:        cache,
	}
}

// Execute performs the activity deletion.
func (uc *DeleteActivityUseCase) Execute(ctx context.Context, input DeleteActivityInput) error {
	activity, err := uc.activityRepo.FindByID(ctx, input.ActivityID)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return domainerror.NewActivityError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return fmt.Errorf("failed to find activity: %w", err)
	}

	if activity.UserID != input.UserID {
		return domainerror.NewActivityError(
			domainerror.ErrCodeUnauthorizedActivity,
			"not authorized to access this activity",
			domainerror.ErrUnauthorizedActivityAccess,
		)
	}

	if err := uc.activityRepo.Delete(ctx, input.ActivityID); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	uc.cache.InvalidateUser(ctx, input.UserID)

	return nil
}
