// Package activity contains activity-related use cases.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendlite/backend/internal/analytics"
	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for activity names.
const MaxNameLength = 255

// CreateActivityInput represents the input for activity creation.
type CreateActivityInput struct {
	UserID   uuid.UUID
	Name     string
	Amount   decimal.Decimal
	Category entity.Category
	SpentAt  *time.Time // Optional, defaults to now (supports backdating)
}

// CreateActivityOutput represents the output of activity creation.
type CreateActivityOutput struct {
	Activity *ActivityOutput
}

// CreateActivityUseCase handles activity creation logic.
type CreateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
	budgetRepo   adapter.BudgetRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	cache        adapter.SnapshotCache
}

// NewCreateActivityUseCase creates a new CreateActivityUseCase instance.
func NewCreateActivityUseCase(
	activityRepo adapter.ActivityRepository,
	budgetRepo adapter.BudgetRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	cache adapter.SnapshotCache,
) *CreateActivityUseCase {
	return &CreateActivityUseCase{
		activityRepo: activityRepo,
		budgetRepo:   budgetRepo,
		userRepo:     userRepo,
		emailService: emailService,
		cache:        cache,
	}
}

// Execute performs the activity creation. Validation failures are resolved
// locally; no store call is made for rejected input.
func (uc *CreateActivityUseCase) Execute(ctx context.Context, input CreateActivityInput) (*CreateActivityOutput, error) {
	if err := validateActivityFields(input.Name, input.Amount, input.Category); err != nil {
		return nil, err
	}

	spentAt := time.Now().UTC()
	if input.SpentAt != nil {
		spentAt = input.SpentAt.UTC()
	}

	activity := entity.NewActivity(input.UserID, strings.TrimSpace(input.Name), input.Amount, input.Category, spentAt)

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	// Derived views are recomputed from a fresh fetch on the next read.
	uc.cache.InvalidateUser(ctx, input.UserID)

	uc.maybeQueueBudgetAlert(ctx, input.UserID, spentAt)

	return &CreateActivityOutput{
		Activity: newActivityOutput(activity),
	}, nil
}

// maybeQueueBudgetAlert queues a budget-exceeded email when this creation
// pushed the month total to or past the monthly limit. Alert failures never
// fail the creation.
func (uc *CreateActivityUseCase) maybeQueueBudgetAlert(ctx context.Context, userID uuid.UUID, spentAt time.Time) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil || !user.BudgetAlerts {
		return
	}

	budget, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return
	}
	limit := entity.DefaultMonthlyLimit
	if budget != nil {
		limit = budget.MonthlyLimit
	}

	all, err := uc.activityRepo.FindByUser(ctx, userID)
	if err != nil {
		return
	}
	monthTotal := analytics.Sum(analytics.SameMonth(all, spentAt))
	if monthTotal.LessThan(limit) {
		return
	}

	err = uc.emailService.QueueBudgetAlert(ctx, adapter.QueueBudgetAlertInput{
		UserEmail:    user.Email,
		UserName:     user.Name,
		Month:        spentAt.Format("2006-01"),
		MonthTotal:   monthTotal.Round(0).String(),
		MonthlyLimit: limit.Round(0).String(),
	})
	if err != nil {
		slog.Warn("Failed to queue budget alert", "user_id", userID, "error", err)
	}
}

// validateActivityFields applies the submission-time validation shared by
// create and update.
func validateActivityFields(name string, amount decimal.Decimal, category entity.Category) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewActivityError(
			domainerror.ErrCodeEmptyActivityName,
			"name is required",
			domainerror.ErrEmptyActivityName,
		)
	}

	if len(name) > MaxNameLength {
		return domainerror.NewActivityError(
			domainerror.ErrCodeNameTooLong,
			fmt.Sprintf("name must not exceed %d characters", MaxNameLength),
			domainerror.ErrEmptyActivityName,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewActivityError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if !entity.IsValidCategory(category) {
		return domainerror.NewActivityError(
			domainerror.ErrCodeInvalidCategory,
			"category must be one of: Food, Games, Shopping, Travel, Bills, Health, Other",
			domainerror.ErrInvalidCategory,
		)
	}

	return nil
}
