// Package analytics contains analytics-related use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	core "github.com/spendlite/backend/internal/analytics"
	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
)

// GetBreakdownInput represents the input for the category breakdown.
type GetBreakdownInput struct {
	UserID uuid.UUID
	Date   time.Time // Month window is the month containing this date
}

// BreakdownItem represents one category bucket with display metadata.
type BreakdownItem struct {
	Category entity.Category
	Label    string
	Color    string
	Icon     string
	Amount   decimal.Decimal
	Percent  float64
	Count    int
}

// GetBreakdownOutput represents the month's spending grouped by category.
type GetBreakdownOutput struct {
	Date       time.Time
	MonthTotal decimal.Decimal
	Items      []BreakdownItem
}

// GetBreakdownUseCase computes the per-category breakdown for a month.
type GetBreakdownUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(activityRepo adapter.ActivityRepository) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{
		activityRepo: activityRepo,
	}
}

// Execute computes the breakdown. Buckets keep the first-seen order of the
// fetched records; an unknown category becomes its own bucket with fallback
// display metadata rather than an error.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, input GetBreakdownInput) (*GetBreakdownOutput, error) {
	all, err := uc.activityRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	window := core.SameMonth(all, input.Date)
	buckets := core.GroupByCategory(window)
	monthTotal := core.Sum(window)

	items := make([]BreakdownItem, 0, len(buckets))
	for _, b := range buckets {
		var percent float64
		if !monthTotal.IsZero() {
			pct := b.Total.Mul(decimal.NewFromInt(100)).Div(monthTotal)
			percent, _ = pct.Round(2).Float64()
		}

		meta := entity.MetaFor(b.Category)
		items = append(items, BreakdownItem{
			Category: b.Category,
			Label:    meta.Label,
			Color:    meta.Color,
			Icon:     meta.Icon,
			Amount:   b.Total,
			Percent:  percent,
			Count:    b.Count,
		})
	}

	return &GetBreakdownOutput{
		Date:       input.Date.UTC(),
		MonthTotal: monthTotal,
		Items:      items,
	}, nil
}
