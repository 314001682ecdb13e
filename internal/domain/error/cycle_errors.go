// Package error defines domain-specific errors for the Check2Check application.
package error

import "errors"

// Budget cycle domain errors.
var (
	// ErrCycleNotFound is returned when a budget cycle is not found.
	ErrCycleNotFound = errors.New("budget cycle not found")

	// ErrNoActiveCycle is returned when the user has no active cycle.
	ErrNoActiveCycle = errors.New("no active budget cycle")

	// ErrActiveCycleExists is returned when starting a cycle while one is
	// already active. Exactly one active cycle exists per user at a time.
	ErrActiveCycleExists = errors.New("an active budget cycle already exists")

	// ErrCycleNotEnded is returned when closing a cycle whose end date is
	// still in the future.
	ErrCycleNotEnded = errors.New("cycle end date has not passed")

	// ErrCycleCompleted is returned when mutating a completed cycle.
	ErrCycleCompleted = errors.New("budget cycle is already completed")

	// ErrInvalidCycleDates is returned when the end date precedes the start date.
	ErrInvalidCycleDates = errors.New("cycle end date must be after start date")

	// ErrUnauthorizedCycleAccess is returned when the user may not touch the cycle.
	ErrUnauthorizedCycleAccess = errors.New("unauthorized access to budget cycle")
)

// CycleErrorCode defines error codes for budget cycle errors.
// Format: CYC-XXYYYY where XX is category and YYYY is specific error.
type CycleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCycleDates  CycleErrorCode = "CYC-010001"
	ErrCodeMissingCycleFields CycleErrorCode = "CYC-010002"

	// State errors (02XXXX)
	ErrCodeCycleNotFound     CycleErrorCode = "CYC-020001"
	ErrCodeNoActiveCycle     CycleErrorCode = "CYC-020002"
	ErrCodeActiveCycleExists CycleErrorCode = "CYC-020003"
	ErrCodeCycleNotEnded     CycleErrorCode = "CYC-020004"
	ErrCodeCycleCompleted    CycleErrorCode = "CYC-020005"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedCycle CycleErrorCode = "CYC-030001"
)

// CycleError represents a budget cycle error with code and message.
type CycleError struct {
	Code    CycleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CycleError) Unwrap() error {
	return e.Err
}

// NewCycleError creates a new CycleError with the given code and message.
func NewCycleError(code CycleErrorCode, message string, err error) *CycleError {
	return &CycleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
