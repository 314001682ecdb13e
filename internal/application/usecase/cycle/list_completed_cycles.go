package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
)

// ListCompletedCyclesInput represents the input for listing past cycles.
type ListCompletedCyclesInput struct {
	UserID uuid.UUID
}

// ListCompletedCyclesOutput represents the output of listing past cycles.
type ListCompletedCyclesOutput struct {
	Cycles []*entity.BudgetCycle
}

// ListCompletedCyclesUseCase handles the cycle history view. Completed
// cycles carry their frozen final summaries; nothing is recomputed.
type ListCompletedCyclesUseCase struct {
	cycleRepo adapter.CycleRepository
}

// NewListCompletedCyclesUseCase creates a new ListCompletedCyclesUseCase instance.
func NewListCompletedCyclesUseCase(cycleRepo adapter.CycleRepository) *ListCompletedCyclesUseCase {
	return &ListCompletedCyclesUseCase{
		cycleRepo: cycleRepo,
	}
}

// Execute lists the user's completed cycles, newest first.
func (uc *ListCompletedCyclesUseCase) Execute(ctx context.Context, input ListCompletedCyclesInput) (*ListCompletedCyclesOutput, error) {
	cycles, err := uc.cycleRepo.ListCompletedByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed cycles: %w", err)
	}

	return &ListCompletedCyclesOutput{Cycles: cycles}, nil
}
