package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// RemoveTransactionInput represents the input for removing a ledger entry.
type RemoveTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// RemoveTransactionOutput represents the output of removing a ledger entry.
type RemoveTransactionOutput struct {
	Removed bool
}

// RemoveTransactionUseCase handles the owner-gated hard removal of a
// mis-entered transaction. Everything else goes through reversals; this
// exists for entries that never should have been recorded at all.
type RemoveTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewRemoveTransactionUseCase creates a new RemoveTransactionUseCase instance.
func NewRemoveTransactionUseCase(transactionRepo adapter.TransactionRepository) *RemoveTransactionUseCase {
	return &RemoveTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute removes the transaction after verifying ownership.
func (uc *RemoveTransactionUseCase) Execute(ctx context.Context, input RemoveTransactionInput) (*RemoveTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if existing.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedToRemove,
			"transaction does not belong to the authenticated user",
			domainerror.ErrNotAuthorizedToRemove,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, existing.ID); err != nil {
		return nil, fmt.Errorf("failed to remove transaction: %w", err)
	}

	return &RemoveTransactionOutput{Removed: true}, nil
}
