// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
	"github.com/spendlite/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByUser retrieves the budget row for a user. A user that never stored a
// budget yields a nil budget and nil error so callers can apply the default.
func (r *budgetRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrBudgetStoreUnavailable, result.Error)
	}
	return budgetModel.ToEntity(), nil
}

// Create creates a budget row for a user.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrBudgetStoreUnavailable, result.Error)
	}
	return nil
}

// Update updates a user's budget row.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("user_id = ?", budget.UserID).
		Updates(map[string]interface{}{
			"monthly_limit": budget.MonthlyLimit,
			"updated_at":    budget.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrBudgetStoreUnavailable, result.Error)
	}
	return nil
}
