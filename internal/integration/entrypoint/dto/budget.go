// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendlite/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting the monthly budget.
type SetBudgetRequest struct {
	MonthlyLimit float64 `json:"monthly_limit" binding:"required,gt=0"`
}

// BudgetResponse represents the budget in API responses.
type BudgetResponse struct {
	MonthlyLimit string    `json:"monthly_limit"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		MonthlyLimit: b.MonthlyLimit.String(),
		UpdatedAt:    b.UpdatedAt,
	}
}
