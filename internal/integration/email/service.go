// Package email provides budget alert email functionality.
package email

import (
	"context"
	"fmt"

	"github.com/spendlite/backend/internal/application/adapter"
	"github.com/spendlite/backend/internal/domain/entity"
	domainerror "github.com/spendlite/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueBudgetAlert queues a budget-exceeded alert, at most once per user per
// month. A second call for the same user and month is a no-op.
func (s *Service) QueueBudgetAlert(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	alreadyQueued, err := s.queue.HasAlertForMonth(ctx, input.UserEmail, input.Month)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to check existing alerts",
			err,
		)
	}
	if alreadyQueued {
		return nil
	}

	subject := fmt.Sprintf("You reached your %s budget - SpendLite", input.Month)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"month":         input.Month,
		"month_total":   input.MonthTotal,
		"monthly_limit": input.MonthlyLimit,
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetExceeded,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget alert email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
