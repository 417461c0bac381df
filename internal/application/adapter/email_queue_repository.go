// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendlite/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the email job queue.
type EmailQueueRepository interface {
	// Create enqueues a new email job.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit pending jobs ordered by schedule time.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists a job's state transition.
	Update(ctx context.Context, job *entity.EmailJob) error

	// HasAlertForMonth reports whether a budget alert was already queued for
	// the recipient in the given "YYYY-MM" month. One alert per user per month.
	HasAlertForMonth(ctx context.Context, recipientEmail, month string) (bool, error)
}
