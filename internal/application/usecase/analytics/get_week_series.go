// Package analytics contains analytics-related use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	core "github.com/spendlite/backend/internal/analytics"
	"github.com/spendlite/backend/internal/application/adapter"
)

// GetWeekSeriesInput represents the input for the weekly series.
type GetWeekSeriesInput struct {
	UserID uuid.UUID
	Date   time.Time // Any day inside the wanted Monday-to-Sunday week
}

// GetWeekSeriesOutput represents the weekly chart series.
type GetWeekSeriesOutput struct {
	WeekStart time.Time
	Points    []core.SeriesPoint // Always exactly 7
}

// GetWeekSeriesUseCase computes the Monday-to-Sunday daily totals.
type GetWeekSeriesUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewGetWeekSeriesUseCase creates a new GetWeekSeriesUseCase instance.
func NewGetWeekSeriesUseCase(activityRepo adapter.ActivityRepository) *GetWeekSeriesUseCase {
	return &GetWeekSeriesUseCase{
		activityRepo: activityRepo,
	}
}

// Execute computes the series for the week containing the given date.
func (uc *GetWeekSeriesUseCase) Execute(ctx context.Context, input GetWeekSeriesInput) (*GetWeekSeriesOutput, error) {
	all, err := uc.activityRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	return &GetWeekSeriesOutput{
		WeekStart: core.WeekStart(input.Date),
		Points:    core.WeekSeries(all, input.Date),
	}, nil
}
