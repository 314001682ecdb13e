// Package error defines domain-specific errors for the Check2Check application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	// Ledger amounts are always positive; direction comes from the type.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrTransactionImmutable is returned on attempts to edit or delete a
	// ledger entry. The ledger is append-only; reversals are new entries.
	ErrTransactionImmutable = errors.New("transactions are append-only")

	// ErrNotAuthorizedToRemove is returned when a non-owner attempts an
	// owner-gated remove action.
	ErrNotAuthorizedToRemove = errors.New("not authorized to remove transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010003"

	// State errors (02XXXX)
	ErrCodeTransactionNotFound  TransactionErrorCode = "TXN-020001"
	ErrCodeTransactionImmutable TransactionErrorCode = "TXN-020002"

	// Authorization errors (03XXXX)
	ErrCodeNotAuthorizedToRemove TransactionErrorCode = "TXN-030001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
