package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/budget"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// CloseCycleInput represents the input for closing a budget cycle.
type CloseCycleInput struct {
	UserID  uuid.UUID
	CycleID uuid.UUID
}

// CloseCycleOutput represents the output of closing a budget cycle.
type CloseCycleOutput struct {
	Cycle   *entity.BudgetCycle
	Summary entity.FinalSummary
}

// CloseCycleUseCase handles closing an ended budget cycle. Closing
// freezes the summary computed at that moment; repeated close calls
// return the stored summary unchanged.
type CloseCycleUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewCloseCycleUseCase creates a new CloseCycleUseCase instance.
func NewCloseCycleUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *CloseCycleUseCase {
	return &CloseCycleUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute closes the cycle and freezes its final summary.
func (uc *CloseCycleUseCase) Execute(ctx context.Context, input CloseCycleInput) (*CloseCycleOutput, error) {
	c, err := loadOwnedCycle(ctx, uc.cycleRepo, input.CycleID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Idempotency: a completed cycle keeps its frozen summary.
	if !c.IsActive() {
		if c.FinalSummary == nil {
			return nil, domainerror.NewCycleError(
				domainerror.ErrCodeCycleCompleted,
				"cycle is completed but has no stored summary",
				domainerror.ErrCycleCompleted,
			)
		}
		return &CloseCycleOutput{Cycle: c, Summary: *c.FinalSummary}, nil
	}

	closedAt := uc.now()
	if !c.CanClose(closedAt) {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeCycleNotEnded,
			"cycle cannot be closed before its end date",
			domainerror.ErrCycleNotEnded,
		)
	}

	transactions, err := uc.transactionRepo.FindByCycle(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := budget.Snapshot(
		budget.Aggregate(c.IncomeItems, c.ExpenseItems, transactions),
		closedAt,
	)
	c.Close(summary)

	if err := uc.cycleRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to close cycle: %w", err)
	}

	return &CloseCycleOutput{Cycle: c, Summary: summary}, nil
}
