// Package error defines domain-specific errors for the Check2Check application.
package error

import "errors"

// Budget sharing domain errors.
var (
	// ErrInviteNotFound is returned when a share invite is not found.
	ErrInviteNotFound = errors.New("invite not found")

	// ErrInviteExpired is returned when redeeming an expired invite.
	ErrInviteExpired = errors.New("invite has expired")

	// ErrInviteAlreadyAccepted is returned when redeeming an invite twice.
	ErrInviteAlreadyAccepted = errors.New("invite already accepted")

	// ErrAlreadyMember is returned when inviting an existing member.
	ErrAlreadyMember = errors.New("user is already a member of this budget")

	// ErrSelfInvite is returned when an owner invites themselves.
	ErrSelfInvite = errors.New("cannot invite yourself")

	// ErrActionRequestNotFound is returned when an action request is not found.
	ErrActionRequestNotFound = errors.New("action request not found")

	// ErrActionRequestReviewed is returned when reviewing a request twice.
	ErrActionRequestReviewed = errors.New("action request already reviewed")

	// ErrNotBudgetOwner is returned when a member attempts an owner-gated action.
	ErrNotBudgetOwner = errors.New("only the budget owner may perform this action")

	// ErrNotBudgetMember is returned when the user is not linked to the budget.
	ErrNotBudgetMember = errors.New("user is not a member of this budget")
)

// ShareErrorCode defines error codes for sharing errors.
// Format: SHR-XXYYYY where XX is category and YYYY is specific error.
type ShareErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSelfInvite         ShareErrorCode = "SHR-010001"
	ErrCodeMissingShareFields ShareErrorCode = "SHR-010002"

	// State errors (02XXXX)
	ErrCodeInviteNotFound        ShareErrorCode = "SHR-020001"
	ErrCodeInviteExpired         ShareErrorCode = "SHR-020002"
	ErrCodeInviteAlreadyAccepted ShareErrorCode = "SHR-020003"
	ErrCodeAlreadyMember         ShareErrorCode = "SHR-020004"
	ErrCodeActionRequestNotFound ShareErrorCode = "SHR-020005"
	ErrCodeActionRequestReviewed ShareErrorCode = "SHR-020006"

	// Authorization errors (03XXXX)
	ErrCodeNotBudgetOwner  ShareErrorCode = "SHR-030001"
	ErrCodeNotBudgetMember ShareErrorCode = "SHR-030002"
)

// ShareError represents a sharing error with code and message.
type ShareError struct {
	Code    ShareErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ShareError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ShareError) Unwrap() error {
	return e.Err
}

// NewShareError creates a new ShareError with the given code and message.
func NewShareError(code ShareErrorCode, message string, err error) *ShareError {
	return &ShareError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
