// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
)

// SetBudgetInput represents the input for setting a user's budget.
type SetBudgetInput struct {
	UserID       uuid.UUID
	MonthlyLimit decimal.Decimal
}

// SetBudgetOutput represents the output of setting a user's budget.
type SetBudgetOutput struct {
	Budget *entity.Budget
}

// SetBudgetUseCase handles updating the monthly budget.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.SnapshotCache
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.SnapshotCache) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute sets the user's monthly limit, creating the row if needed.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.MonthlyLimit.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthlyLimit,
			"monthly limit must be greater than zero",
			domainerror.ErrInvalidMonthlyLimit,
		)
	}

	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}

	if budget == nil {
		budget = entity.NewBudget(input.UserID, input.MonthlyLimit)
		if err := uc.budgetRepo.Create(ctx, budget); err != nil {
			return nil, fmt.Errorf("failed to create budget: %w", err)
		}
	} else {
		budget.MonthlyLimit = input.MonthlyLimit
		budget.UpdatedAt = time.Now().UTC()
		if err := uc.budgetRepo.Update(ctx, budget); err != nil {
			return nil, fmt.Errorf("failed to update budget: %w", err)
		}
	}

	uc.cache.InvalidateUser(ctx, input.UserID)

	return &SetBudgetOutput{Budget: budget}, nil
}
