package cycle

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

// RemoveItemInput represents the input for removing a budget item.
type RemoveItemInput struct {
	UserID  uuid.UUID
	CycleID uuid.UUID
	Key     entity.ItemKey
}

// RemoveItemOutput represents the output of removing a budget item.
type RemoveItemOutput struct {
	// Reversals holds the balancing ledger entries created when the
	// removed item already had recorded payments.
	Reversals []*entity.Transaction
}

// RemoveItemUseCase handles removing a budget item from an active cycle.
// The ledger stays append-only: payments recorded against the item are
// cancelled with balancing reversal transactions, never deleted.
type RemoveItemUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewRemoveItemUseCase creates a new RemoveItemUseCase instance.
func NewRemoveItemUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute removes the addressed item from the plan, first reversing any
// payments already recorded against its label.
func (uc *RemoveItemUseCase) Execute(ctx context.Context, input RemoveItemInput) (*RemoveItemOutput, error) {
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

	recorded, err := uc.transactionRepo.FindByCycleAndCategory(ctx, c.ID, item.Label)
	if err != nil {
		return nil, fmt.Errorf("failed to load item transactions: %w", err)
	}

	// Settle/undo pairs may interleave, so reverse the net effect with a
	// single balancing entry instead of one reversal per payment.
	forwardType := entity.TransactionTypeExpense
	if item.Type == entity.ItemTypeIncome {
		forwardType = entity.TransactionTypeIncome
	}
	net := decimal.Zero
	for _, transaction := range recorded {
		if transaction.Type == forwardType {
			net = net.Add(transaction.Amount)
		} else {
			net = net.Sub(transaction.Amount)
		}
	}

	var reversals []*entity.Transaction
	if net.IsPositive() {
		balancing := entity.NewTransaction(
			input.UserID,
			c.ID,
			entity.OppositeTransactionType(forwardType),
			net,
			item.Label,
			time.Now().UTC(),
		)
		balancing.IsReversal = true
		balancing.SourceItemID = &item.ID
		if err := uc.transactionRepo.Create(ctx, balancing); err != nil {
			return nil, fmt.Errorf("failed to create balancing transaction: %w", err)
		}
		reversals = append(reversals, balancing)
	}

	if err := uc.cycleRepo.RemoveItem(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}

	return &RemoveItemOutput{Reversals: reversals}, nil
}
