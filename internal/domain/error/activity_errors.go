// Package error defines domain-specific errors for the SpendLite application.
package error

import "errors"

// Activity domain errors.
var (
	// ErrActivityNotFound is returned when an activity does not exist or was deleted.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrEmptyActivityName is returned when an activity is submitted without a name.
	ErrEmptyActivityName = errors.New("name is required")

	// ErrNegativeAmount is returned when an activity amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidCategory is returned when a category outside the closed set is submitted.
	ErrInvalidCategory = errors.New("category is not a recognized value")

	// ErrUnauthorizedActivityAccess is returned when an activity belongs to another user.
	ErrUnauthorizedActivityAccess = errors.New("not authorized to access this activity")

	// ErrStoreUnavailable is returned when the persistence layer cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ActivityErrorCode defines error codes for activity errors.
// Format: ACT-XXYYYY where XX is category and YYYY is specific error.
type ActivityErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyActivityName ActivityErrorCode = "ACT-010001"
	ErrCodeNegativeAmount    ActivityErrorCode = "ACT-010002"
	ErrCodeInvalidCategory   ActivityErrorCode = "ACT-010003"
	ErrCodeNameTooLong       ActivityErrorCode = "ACT-010004"
	ErrCodeInvalidSpentAt    ActivityErrorCode = "ACT-010005"

	// Lookup errors (02XXXX)
	ErrCodeActivityNotFound     ActivityErrorCode = "ACT-020001"
	ErrCodeUnauthorizedActivity ActivityErrorCode = "ACT-020002"

	// Store errors (99XXXX)
	ErrCodeActivityStoreUnavailable ActivityErrorCode = "ACT-990001"
)

// ActivityError represents an activity error with code and message.
type ActivityError struct {
	Code    ActivityErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ActivityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ActivityError) Unwrap() error {
	return e.Err
}

// NewActivityError creates a new ActivityError with the given code and message.
func NewActivityError(code ActivityErrorCode, message string, err error) *ActivityError {
	return &ActivityError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
