// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Activity represents a single expense entry in the SpendLite system.
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal // Always >= 0, full precision
	Category  Category
	SpentAt   time.Time // Caller-settable, supports backdating
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewActivity creates a new Activity entity.
func NewActivity(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	category Category,
	spentAt time.Time,
) *Activity {
	now := time.Now().UTC()

	return &Activity{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Category:  category,
		SpentAt:   spentAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
