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

// SettleItemInput represents the input for settling a budget item.
type SettleItemInput struct {
	UserID  uuid.UUID
	CycleID uuid.UUID
	Key     entity.ItemKey
}

// SettleItemOutput represents the output of settling a budget item.
type SettleItemOutput struct {
	Item        *entity.BudgetItem
	Transaction *entity.Transaction
}

// SettleItemUseCase handles marking an item as paid (expense) or
// received (income), which appends the matching ledger entry.
type SettleItemUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewSettleItemUseCase creates a new SettleItemUseCase instance.
func NewSettleItemUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *SettleItemUseCase {
	return &SettleItemUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute settles the addressed item and records the money movement.
func (uc *SettleItemUseCase) Execute(ctx context.Context, input SettleItemInput) (*SettleItemOutput, error) {
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

	if item.IsSettled {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeItemAlreadySettled,
			fmt.Sprintf("item %q is already settled", item.Label),
			domainerror.ErrItemAlreadySettled,
		)
	}

	// Settling means actual money moved, which requires a pledged amount.
	if !item.HasAmount() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAmount,
			fmt.Sprintf("item %q has no amount yet", item.Label),
			domainerror.ErrInvalidAmount,
		)
	}

	transactionType := entity.TransactionTypeExpense
	if item.Type == entity.ItemTypeIncome {
		transactionType = entity.TransactionTypeIncome
	}

	transaction := entity.NewTransaction(
		input.UserID,
		c.ID,
		transactionType,
		*item.Amount,
		item.Label,
		time.Now().UTC(),
	)
	transaction.SourceItemID = &item.ID
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	item.Settle()
	if err := uc.cycleRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &SettleItemOutput{Item: item, Transaction: transaction}, nil
}
