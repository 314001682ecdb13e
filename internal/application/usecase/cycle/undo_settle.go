package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// UndoSettleInput represents the input for undoing a settle action.
type UndoSettleInput struct {
	UserID  uuid.UUID
	CycleID uuid.UUID
	Key     entity.ItemKey
}

// UndoSettleOutput represents the output of undoing a settle action.
type UndoSettleOutput struct {
	Item     *entity.BudgetItem
	Reversal *entity.Transaction
}

// UndoSettleUseCase handles reverting a settle action before the cycle
// closes. The original ledger entry stays; a reversal balances it out.
type UndoSettleUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewUndoSettleUseCase creates a new UndoSettleUseCase instance.
func NewUndoSettleUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *UndoSettleUseCase {
	return &UndoSettleUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute reverts the settle state of the addressed item and appends a
// balancing reversal to the ledger.
func (uc *UndoSettleUseCase) Execute(ctx context.Context, input UndoSettleInput) (*UndoSettleOutput, error) {
	c, err := loadOwnedActiveCycle(ctx, uc.cycleRepo, input.CycleID, input.UserID)
	if err != nil {
		return nil, err
	}

	item := c.FindItem(input.Key)
	if item == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeItemNotFound,
			fmt.Sprintf("no %s item labeled %q in this cycle", input.Key.Type, input.Key.Label),
			domainerror.ErrItemNotFound,
		)
	}

	if !item.IsSettled {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeItemNotSettled,
			fmt.Sprintf("item %q is not settled", item.Label),
			domainerror.ErrItemNotSettled,
		)
	}

	// Reverse the actual settle entry rather than the current pledged
	// amount, in case the amount was edited after settling. Only entries
	// stamped with this item's ID qualify: user-logged entries can share
	// the label without being settle entries.
	recorded, err := uc.transactionRepo.FindByCycleAndCategory(ctx, c.ID, item.Label)
	if err != nil {
		return nil, fmt.Errorf("failed to load item transactions: %w", err)
	}
	var settleEntry *entity.Transaction
	for _, transaction := range recorded {
		if transaction.IsReversal || transaction.SourceItemID == nil {
			continue
		}
		if *transaction.SourceItemID == item.ID {
			settleEntry = transaction
		}
	}

	var reversal *entity.Transaction
	if settleEntry != nil {
		reversal = entity.NewReversalTransaction(settleEntry)
	} else {
		forwardType := entity.TransactionTypeExpense
		if item.Type == entity.ItemTypeIncome {
			forwardType = entity.TransactionTypeIncome
		}
		reversal = entity.NewTransaction(
			input.UserID,
			c.ID,
			entity.OppositeTransactionType(forwardType),
			item.AmountOrZero(),
			item.Label,
			time.Now().UTC(),
		)
		reversal.IsReversal = true
		reversal.SourceItemID = &item.ID
	}
	if err := uc.transactionRepo.Create(ctx, reversal); err != nil {
		return nil, fmt.Errorf("failed to record reversal: %w", err)
	}

	item.UndoSettle()
	if err := uc.cycleRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &UndoSettleOutput{Item: item, Reversal: reversal}, nil
}
