// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultMonthlyLimit is the monthly budget applied when a user has never
// stored one. The row is created lazily on first read.
var DefaultMonthlyLimit = decimal.NewFromInt(50000)

// Budget represents a user's monthly spending ceiling.
type Budget struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	MonthlyLimit decimal.Decimal // Always > 0
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, monthlyLimit decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:           uuid.New(),
		UserID:       userID,
		MonthlyLimit: monthlyLimit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewDefaultBudget creates a Budget with the default monthly limit.
func NewDefaultBudget(userID uuid.UUID) *Budget {
	return NewBudget(userID, DefaultMonthlyLimit)
}
