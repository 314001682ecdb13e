// Package error defines domain-specific errors for the Check2Check application.
package error

import "errors"

// Budget item domain errors.
var (
	// ErrInvalidAmount is returned when an amount is negative or non-numeric
	// where a non-negative value is required.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDuplicateItemLabel is returned when adding an item whose label already
	// exists for the same type within the cycle. Labels are the natural key.
	ErrDuplicateItemLabel = errors.New("item label already exists for this type")

	// ErrItemNotFound is returned when no item matches the given natural key.
	ErrItemNotFound = errors.New("budget item not found")

	// ErrInvalidItemType is returned when the item type is outside the enum.
	ErrInvalidItemType = errors.New("invalid budget item type")

	// ErrInvalidDueDay is returned when the due day is outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrItemAlreadySettled is returned when settling an item twice.
	ErrItemAlreadySettled = errors.New("item is already settled")

	// ErrItemNotSettled is returned when undoing a settle that never happened.
	ErrItemNotSettled = errors.New("item is not settled")
)

// BudgetErrorCode defines error codes for budget item errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount      BudgetErrorCode = "BDG-010001"
	ErrCodeDuplicateItemLabel BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidItemType    BudgetErrorCode = "BDG-010003"
	ErrCodeInvalidDueDay      BudgetErrorCode = "BDG-010004"
	ErrCodeMissingItemFields  BudgetErrorCode = "BDG-010005"

	// State errors (02XXXX)
	ErrCodeItemNotFound       BudgetErrorCode = "BDG-020001"
	ErrCodeItemAlreadySettled BudgetErrorCode = "BDG-020002"
	ErrCodeItemNotSettled     BudgetErrorCode = "BDG-020003"
)

// BudgetError represents a budget item error with code and message.
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
