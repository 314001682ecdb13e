package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing a cycle's ledger.
type ListTransactionsInput struct {
	UserID  uuid.UUID
	CycleID uuid.UUID
	// CategoryName optionally narrows the listing to one item or goal.
	CategoryName string
}

// ListTransactionsOutput represents the output of listing a cycle's ledger.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles reading a cycle's ledger in insertion order.
type ListTransactionsUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the cycle's transactions, optionally filtered by category name.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	c, err := uc.cycleRepo.FindByID(ctx, input.CycleID)
	if err != nil {
		return nil, err
	}
	if c.UserID != input.UserID {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeUnauthorizedCycle,
			"cycle does not belong to the authenticated user",
			domainerror.ErrUnauthorizedCycleAccess,
		)
	}

	var transactions []*entity.Transaction
	if input.CategoryName != "" {
		transactions, err = uc.transactionRepo.FindByCycleAndCategory(ctx, c.ID, input.CategoryName)
	} else {
		transactions, err = uc.transactionRepo.FindByCycle(ctx, c.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
