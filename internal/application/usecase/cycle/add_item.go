package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
)

// AddItemInput represents the input for adding an item to a cycle.
type AddItemInput struct {
	UserID  uuid.UUID
	CycleID uuid.UUID
	Item    ItemSpec
}

// AddItemOutput represents the output of adding an item.
type AddItemOutput struct {
	Item *entity.BudgetItem
}

// AddItemUseCase handles adding a budget item to an active cycle.
type AddItemUseCase struct {
	cycleRepo adapter.CycleRepository
}

// NewAddItemUseCase creates a new AddItemUseCase instance.
func NewAddItemUseCase(cycleRepo adapter.CycleRepository) *AddItemUseCase {
	return &AddItemUseCase{
		cycleRepo: cycleRepo,
	}
}

// Execute validates the item spec and appends the item to the cycle's plan.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	c, err := loadOwnedActiveCycle(ctx, uc.cycleRepo, input.CycleID, input.UserID)
	if err != nil {
		return nil, err
	}

	item, err := buildItem(c, input.Item)
	if err != nil {
		return nil, err
	}

	if err := uc.cycleRepo.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	return &AddItemOutput{Item: item}, nil
}
