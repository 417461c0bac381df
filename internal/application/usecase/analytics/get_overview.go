// Package analytics contains analytics-related use cases. They orchestrate
// fetching a fresh snapshot of the user's records and feeding it through the
// pure pipeline in internal/analytics.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	core "github.com/spendlite/backend/internal/analytics"
	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the spending overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	// Date is the viewed day T. The month window and remaining-days count
	// are relative to it, so viewing a past day yields that day's allowance.
	Date time.Time
}

// GetOverviewOutput represents the derived spending overview for one day.
type GetOverviewOutput struct {
	Date           time.Time       `json:"date"`
	DayTotal       decimal.Decimal `json:"day_total"`
	MonthTotal     decimal.Decimal `json:"month_total"`
	MonthlyLimit   decimal.Decimal `json:"monthly_limit"`
	BudgetPercent  decimal.Decimal `json:"budget_percent"`
	RemainingDays  int             `json:"remaining_days"`
	RemainingDaily decimal.Decimal `json:"remaining_daily"`
	IsOverDaily    bool            `json:"is_over_daily"`
}

// GetOverviewUseCase computes the day/month totals and budget allowance.
type GetOverviewUseCase struct {
	activityRepo adapter.ActivityRepository
	budgetRepo   adapter.BudgetRepository
	cache        adapter.SnapshotCache
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	activityRepo adapter.ActivityRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.SnapshotCache,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		activityRepo: activityRepo,
		budgetRepo:   budgetRepo,
		cache:        cache,
	}
}

// Execute computes the overview for the viewed day, serving a cached
// snapshot when one survives since the last mutation.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	date := input.Date.UTC()
	cacheKey := "overview:" + date.Format("2006-01-02")

	if data, ok := uc.cache.Get(ctx, input.UserID, cacheKey); ok {
		var cached GetOverviewOutput
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	all, err := uc.activityRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	limit := entity.DefaultMonthlyLimit
	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}
	if budget != nil {
		limit = budget.MonthlyLimit
	}

	dayTotal := core.Sum(core.SameDay(all, date))
	monthTotal := core.Sum(core.SameMonth(all, date))
	remainingDaily := core.RemainingDailyAt(monthTotal, dayTotal, limit, date)

	output := &GetOverviewOutput{
		Date:           date,
		DayTotal:       dayTotal,
		MonthTotal:     monthTotal,
		MonthlyLimit:   limit,
		BudgetPercent:  core.BudgetPercent(monthTotal, limit),
		RemainingDays:  core.RemainingDays(date),
		RemainingDaily: remainingDaily,
		IsOverDaily:    core.IsOverDaily(dayTotal, remainingDaily),
	}

	if data, err := json.Marshal(output); err == nil {
		uc.cache.Set(ctx, input.UserID, cacheKey, data)
	}

	return output, nil
}
