// Package activity contains activity-related use cases.
package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
)

// UpdateActivityInput represents the input for activity update. Nil fields
// keep their stored value.
type UpdateActivityInput struct {
	ActivityID uuid.UUID
	UserID     uuid.UUID
	Name       *string
	Amount     *decimal.Decimal
	Category   *entity.Category
	SpentAt    *time.Time
}

// UpdateActivityOutput represents the output of activity update.
type UpdateActivityOutput struct {
	Activity *ActivityOutput
}

// UpdateActivityUseCase handles activity update logic.
type UpdateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
	cache        adapter.SnapshotCache
}

// NewUpdateActivityUseCase creates a new UpdateActivityUseCase instance.
func NewUpdateActivityUseCase(activityRepo adapter.ActivityRepository, cache adapter.SnapshotCache) *UpdateActivityUseCase {
	return &UpdateActivityUseCase{
		activityRepo: activityRepo,
		cache:        cache,
	}
}

// Execute performs the activity update as a replace-by-id: the stored record
// is read, fields are replaced, and the result written back whole.
func (uc *UpdateActivityUseCase) Execute(ctx context.Context, input UpdateActivityInput) (*UpdateActivityOutput, error) {
	activity, err := uc.activityRepo.FindByID(ctx, input.ActivityID)
	if err != nil {
		if errors.Is(err, domainerror.ErrActivityNotFound) {
			return nil, domainerror.NewActivityError(
				domainerror.ErrCodeActivityNotFound,
				"activity not found",
				domainerror.ErrActivityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}

	if activity.UserID != input.UserID {
		return nil, domainerror.NewActivityError(
			domainerror.ErrCodeUnauthorizedActivity,
			"not authorized to access this activity",
			domainerror.ErrUnauthorizedActivityAccess,
		)
	}

	if input.Name != nil {
		activity.Name = strings.TrimSpace(*input.Name)
	}
	if input.Amount != nil {
		activity.Amount = *input.Amount
	}
	if input.Category != nil {
		activity.Category = *input.Category
	}
	if input.SpentAt != nil {
		activity.SpentAt = input.SpentAt.UTC()
	}

	if err := validateActivityFields(activity.Name, activity.Amount, activity.Category); err != nil {
		return nil, err
	}

	activity.UpdatedAt = time.Now().UTC()

	if err := uc.activityRepo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	uc.cache.InvalidateUser(ctx, input.UserID)

	return &UpdateActivityOutput{
		Activity: newActivityOutput(activity),
	}, nil
}
