// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendlite/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// FindByUser retrieves the budget row for a user. Returns
	// domainerror.ErrBudgetStoreUnavailable wrapped errors on store failure
	// and a nil budget (no error) when the user has never stored one.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Budget, error)

	// Create creates a budget row for a user.
	Create(ctx context.Context, budget *entity.Budget) error

	// Update updates a user's budget row.
	Update(ctx context.Context, budget *entity.Budget) error
}
