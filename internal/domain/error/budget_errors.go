// Package error defines domain-specific errors for the SpendLite application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidMonthlyLimit is returned when a budget limit is zero or negative.
	ErrInvalidMonthlyLimit = errors.New("monthly limit must be greater than zero")

	// ErrBudgetStoreUnavailable is returned when the budget row cannot be read or written.
	ErrBudgetStoreUnavailable = errors.New("budget store unavailable")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthlyLimit BudgetErrorCode = "BGT-010001"

	// Store errors (99XXXX)
	ErrCodeBudgetStoreUnavailable BudgetErrorCode = "BGT-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
