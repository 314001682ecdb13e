package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// WithdrawInput represents the input for withdrawing from a savings goal.
type WithdrawInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount string
}

// WithdrawOutput represents the output of withdrawing from a savings goal.
type WithdrawOutput struct {
	Goal *entity.Goal
	// Transaction is the reversal-flagged goal entry, nil when no
	// active cycle exists.
	Transaction *entity.Transaction
}

// WithdrawUseCase handles taking money back out of a savings goal.
// Debt goals cannot be withdrawn from; money paid off stays paid.
type WithdrawUseCase struct {
	goalRepo        adapter.GoalRepository
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewWithdrawUseCase creates a new WithdrawUseCase instance.
func NewWithdrawUseCase(
	goalRepo adapter.GoalRepository,
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *WithdrawUseCase {
	return &WithdrawUseCase{
		goalRepo:        goalRepo,
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute withdraws the amount from the savings goal.
func (uc *WithdrawUseCase) Execute(ctx context.Context, input WithdrawInput) (*WithdrawOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}
	if g.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to the authenticated user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if g.GoalType != entity.GoalTypeSavings {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotSavingsGoal,
			fmt.Sprintf("goal %q is not a savings goal", g.Name),
			domainerror.ErrNotSavingsGoal,
		)
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			fmt.Sprintf("amount %q must be a positive decimal", input.Amount),
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if amount.GreaterThan(g.CurrentAmount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInsufficientSavings,
			fmt.Sprintf("goal %q holds %s, cannot withdraw %s", g.Name, g.CurrentAmount, amount),
			domainerror.ErrInsufficientSavings,
		)
	}

	g.Withdraw(amount)
	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	output := &WithdrawOutput{Goal: g}

	activeCycle, err := uc.cycleRepo.FindActiveByUser(ctx, input.UserID)
	switch {
	case err == nil:
		transaction := entity.NewTransaction(
			input.UserID,
			activeCycle.ID,
			entity.TransactionTypeGoal,
			amount,
			g.Name,
			time.Now().UTC(),
		)
		transaction.IsReversal = true
		if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
			return nil, fmt.Errorf("failed to record withdrawal: %w", err)
		}
		output.Transaction = transaction
	case errors.Is(err, domainerror.ErrNoActiveCycle):
		// Nothing to attach the movement to.
	default:
		return nil, fmt.Errorf("failed to look up active cycle: %w", err)
	}

	return output, nil
}
