// Package error defines domain-specific errors for the Check2Check application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when a linked account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a transfer exceeds the source balance.
	ErrInsufficientFunds = errors.New("insufficient funds for transfer")

	// ErrSameAccountTransfer is returned when source and destination match.
	ErrSameAccountTransfer = errors.New("cannot transfer to the same account")

	// ErrInvalidAccountType is returned when the account type is outside the enum.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrUnauthorizedAccountAccess is returned when the account belongs to another user.
	ErrUnauthorizedAccountAccess = errors.New("unauthorized access to account")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType   AccountErrorCode = "ACC-010001"
	ErrCodeSameAccountTransfer  AccountErrorCode = "ACC-010002"
	ErrCodeMissingAccountFields AccountErrorCode = "ACC-010003"

	// State errors (02XXXX)
	ErrCodeAccountNotFound   AccountErrorCode = "ACC-020001"
	ErrCodeInsufficientFunds AccountErrorCode = "ACC-020002"

	// Authorization errors (03XXXX)
	ErrCodeUnauthorizedAccount AccountErrorCode = "ACC-030001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
