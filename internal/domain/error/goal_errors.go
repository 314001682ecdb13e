// Package error defines domain-specific errors for the Check2Check application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalAlreadyExists is returned when a debt already has an active
	// payoff goal referencing it.
	ErrGoalAlreadyExists = errors.New("an active goal already exists for this debt")

	// ErrGoalCompleted is returned when logging a payment against a
	// completed goal. Completed is terminal.
	ErrGoalCompleted = errors.New("goal is already completed")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidStrategy is returned when the payoff strategy is outside the enum.
	ErrInvalidStrategy = errors.New("invalid payoff strategy")

	// ErrNotSavingsGoal is returned when withdrawing from a debt goal.
	// Withdrawals apply to savings goals only.
	ErrNotSavingsGoal = errors.New("withdrawals apply to savings goals only")

	// ErrInsufficientSavings is returned when withdrawing more than saved.
	ErrInsufficientSavings = errors.New("withdrawal exceeds saved amount")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010001"
	ErrCodeInvalidStrategy     GoalErrorCode = "GOL-010002"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010003"

	// State errors (02XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-020001"
	ErrCodeGoalAlreadyExists   GoalErrorCode = "GOL-020002"
	ErrCodeGoalCompleted       GoalErrorCode = "GOL-020003"
	ErrCodeNotSavingsGoal      GoalErrorCode = "GOL-020004"
	ErrCodeInsufficientSavings GoalErrorCode = "GOL-020005"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-030001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
