// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
)

// GetBudgetInput represents the input for reading a user's budget.
type GetBudgetInput struct {
	UserID uuid.UUID
}

// GetBudgetOutput represents the output of reading a user's budget.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase handles reading the monthly budget, lazily creating the
// default row on first read.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute retrieves the user's budget. Absence is not an error: the default
// is stored and returned.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}

	if budget == nil {
		budget = entity.NewDefaultBudget(input.UserID)
		if err := uc.budgetRepo.Create(ctx, budget); err != nil {
			// The default still serves this read; persisting it can wait
			// for the next one.
			slog.Warn("Failed to persist default budget", "user_id", input.UserID, "error", err)
		}
	}

	return &GetBudgetOutput{Budget: budget}, nil
}
