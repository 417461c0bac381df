// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for the outbound email provider.
type EmailSender interface {
	// Send sends a single email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueBudgetAlertInput represents the input for queueing a budget alert email.
type QueueBudgetAlertInput struct {
	UserEmail    string
	UserName     string
	Month        string // "YYYY-MM"
	MonthTotal   string
	MonthlyLimit string
}

// EmailService defines the interface for queueing domain emails.
type EmailService interface {
	// QueueBudgetAlert queues a budget-exceeded alert, at most once per
	// user per month.
	QueueBudgetAlert(ctx context.Context, input QueueBudgetAlertInput) error
}
