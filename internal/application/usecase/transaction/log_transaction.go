// Package transaction contains ledger-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// LogTransactionInput represents the input for recording a ledger entry.
type LogTransactionInput struct {
	UserID       uuid.UUID
	Type         entity.TransactionType
	Amount       string
	CategoryName string
	TransactedAt *time.Time
}

// LogTransactionOutput represents the output of recording a ledger entry.
type LogTransactionOutput struct {
	Transaction *entity.Transaction
}

// LogTransactionUseCase handles recording ad-hoc money movement against
// the user's active cycle, such as a variable spend that has no settle
// action behind it.
type LogTransactionUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewLogTransactionUseCase creates a new LogTransactionUseCase instance.
func NewLogTransactionUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *LogTransactionUseCase {
	return &LogTransactionUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute validates and appends the transaction to the active cycle's ledger.
func (uc *LogTransactionUseCase) Execute(ctx context.Context, input LogTransactionInput) (*LogTransactionOutput, error) {
	switch input.Type {
	case entity.TransactionTypeIncome, entity.TransactionTypeExpense, entity.TransactionTypeGoal:
	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income', 'expense', or 'goal'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.CategoryName == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category name is required",
			nil,
		)
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount %q must be a positive decimal", input.Amount),
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	activeCycle, err := uc.cycleRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	transactedAt := time.Now().UTC()
	if input.TransactedAt != nil {
		transactedAt = *input.TransactedAt
	}

	newTransaction := entity.NewTransaction(
		input.UserID,
		activeCycle.ID,
		input.Type,
		amount,
		input.CategoryName,
		transactedAt,
	)
	if err := uc.transactionRepo.Create(ctx, newTransaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	return &LogTransactionOutput{Transaction: newTransaction}, nil
}
