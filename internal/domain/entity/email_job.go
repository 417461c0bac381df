// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus represents the status of an email job in the queue.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType represents the type of email template.
type EmailTemplateType string

const (
	TemplateBudgetExceeded EmailTemplateType = "budget_exceeded"
)

// EmailJob represents an email in the queue waiting to be sent.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a new EmailJob with default values.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing transitions the job to the processing state.
func (j *EmailJob) MarkProcessing() {
	j.Status = EmailStatusProcessing
	j.Attempts++
}

// MarkSent transitions the job to the sent state.
func (j *EmailJob) MarkSent(resendID string) {
	now := time.Now().UTC()
	j.Status = EmailStatusSent
	j.ResendID = resendID
	j.ProcessedAt = &now
}

// MarkFailed records a failure. The job goes back to pending until attempts
// are exhausted, then stays failed.
func (j *EmailJob) MarkFailed(errMsg string) {
	j.LastError = errMsg
	if j.Attempts >= j.MaxAttempts {
		now := time.Now().UTC()
		j.Status = EmailStatusFailed
		j.ProcessedAt = &now
		return
	}
	j.Status = EmailStatusPending
}
