package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/budget"
	"github.com/check2check/backend/internal/domain/entity"
	"github.com/check2check/backend/internal/domain/valueobject"
)

// GetActiveCycleInput represents the input for fetching the active cycle.
type GetActiveCycleInput struct {
	UserID uuid.UUID
}

// GetActiveCycleOutput carries the active cycle together with the live
// figures the dashboard renders: the classified expense view and the
// summary recomputed from the current plan and ledger.
type GetActiveCycleOutput struct {
	Cycle          *entity.BudgetCycle
	Classification valueobject.Classification
	Summary        valueobject.BudgetSummary
}

// GetActiveCycleUseCase handles fetching the user's active cycle with
// its derived dashboard figures.
type GetActiveCycleUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetActiveCycleUseCase creates a new GetActiveCycleUseCase instance.
func NewGetActiveCycleUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *GetActiveCycleUseCase {
	return &GetActiveCycleUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute loads the active cycle and recomputes its summary from the
// ledger. Summaries of active cycles are never stored.
func (uc *GetActiveCycleUseCase) Execute(ctx context.Context, input GetActiveCycleInput) (*GetActiveCycleOutput, error) {
	activeCycle, err := uc.cycleRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByCycle(ctx, activeCycle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetActiveCycleOutput{
		Cycle:          activeCycle,
		Classification: budget.ClassifyExpenses(activeCycle.ExpenseItems),
		Summary:        budget.Aggregate(activeCycle.IncomeItems, activeCycle.ExpenseItems, transactions),
	}, nil
}
