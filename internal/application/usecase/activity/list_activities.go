// Package activity contains activity-related use cases.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spendlite/backend/internal/analytics"
	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
)

// ListActivitiesInput represents the input for listing activities.
type ListActivitiesInput struct {
	UserID   uuid.UUID
	Query    string          // Free-text search on name; empty matches all
	Category entity.Category // CategoryAll disables the category filter
	Day      *time.Time      // Optional: restrict to one calendar day
}

// ListActivitiesOutput represents the output of listing activities.
type ListActivitiesOutput struct {
	Activities []*ActivityOutput
	Total      int
}

// ListActivitiesUseCase handles listing a user's activities with the
// display-time search and category filters applied.
type ListActivitiesUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(activityRepo adapter.ActivityRepository) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
	}
}

// Execute fetches the user's full record set and narrows it in memory. The
// store's descending fetch order is preserved through the filters.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	all, err := uc.activityRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	subset := all
	if input.Day != nil {
		subset = analytics.SameDay(subset, *input.Day)
	}

	category := input.Category
	if category == "" {
		category = entity.CategoryAll
	}
	subset = analytics.Filter(subset, input.Query, category)

	outputs := make([]*ActivityOutput, len(subset))
	for i, a := range subset {
		outputs[i] = newActivityOutput(a)
	}

	return &ListActivitiesOutput{
		Activities: outputs,
		Total:      len(outputs),
	}, nil
}
