package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/budget"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// UpdateItemInput represents the input for updating a budget item.
// The item is addressed by its natural key; nil pointer fields are left
// unchanged.
type UpdateItemInput struct {
	UserID  uuid.UUID
	CycleID uuid.UUID
	Key     entity.ItemKey

	// Amount, when non-nil, is re-parsed; an empty string clears the
	// pledge back to "input pending".
	Amount *string
	DueDay *int

	PrincipalBalance *string
	InterestRate     *string
}

// UpdateItemOutput represents the output of updating a budget item.
type UpdateItemOutput struct {
	Item *entity.BudgetItem
}

// UpdateItemUseCase handles editing a budget item inside an active cycle.
type UpdateItemUseCase struct {
	cycleRepo adapter.CycleRepository
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(cycleRepo adapter.CycleRepository) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		cycleRepo: cycleRepo,
	}
}

// Execute applies the requested field changes to the addressed item.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
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

	if input.Amount != nil {
		amount, err := budget.ParseAmount(*input.Amount)
		if err != nil {
			return nil, err
		}
		item.Amount = amount
	}

	if input.DueDay != nil {
		if *input.DueDay < 1 || *input.DueDay > 31 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidDueDay,
				"due day must be between 1 and 31",
				domainerror.ErrInvalidDueDay,
			)
		}
		item.DueDay = input.DueDay
	}

	if entity.IsDebtCategory(item.Category) {
		if input.PrincipalBalance != nil {
			if item.PrincipalBalance, err = budget.ParseAmount(*input.PrincipalBalance); err != nil {
				return nil, err
			}
		}
		if input.InterestRate != nil {
			if item.InterestRate, err = budget.ParseAmount(*input.InterestRate); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.cycleRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &UpdateItemOutput{Item: item}, nil
}
