// Package error defines domain-specific errors for the SpendLite application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidReferenceDate is returned when a reference date cannot be parsed.
	ErrInvalidReferenceDate = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrAnalyticsStoreUnavailable is returned when the record set cannot be fetched.
	// Callers keep serving the previous snapshot when they see this.
	ErrAnalyticsStoreUnavailable = errors.New("analytics store unavailable")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReferenceDate AnalyticsErrorCode = "ANL-010001"

	// Store errors (99XXXX)
	ErrCodeAnalyticsStoreUnavailable AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
