package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/budget"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// LogPaymentInput represents the input for applying funds to a goal.
type LogPaymentInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount string
}

// LogPaymentOutput represents the output of applying funds to a goal.
type LogPaymentOutput struct {
	Goal *entity.Goal
	// Applied is the credited amount after capping at the goal's
	// remaining need. May be less than the requested amount.
	Applied decimal.Decimal
	// Transaction is the goal-type ledger entry, nil when no active
	// cycle exists to attach it to.
	Transaction *entity.Transaction
}

// LogPaymentUseCase handles crediting surplus money toward a goal. The
// amount is capped at the goal's remaining need, and the movement lands
// in the active cycle's ledger as a goal-type entry so it never skews
// income or expense totals.
type LogPaymentUseCase struct {
	goalRepo        adapter.GoalRepository
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
}

// NewLogPaymentUseCase creates a new LogPaymentUseCase instance.
func NewLogPaymentUseCase(
	goalRepo adapter.GoalRepository,
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
) *LogPaymentUseCase {
	return &LogPaymentUseCase{
		goalRepo:        goalRepo,
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute applies the payment and completes the goal when its remaining
// need reaches zero.
func (uc *LogPaymentUseCase) Execute(ctx context.Context, input LogPaymentInput) (*LogPaymentOutput, error) {
	g, err := uc.loadOwnedGoal(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if g.Status != entity.GoalStatusActive {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalCompleted,
			fmt.Sprintf("goal %q is already completed", g.Name),
			domainerror.ErrGoalCompleted,
		)
	}

	requested, err := decimal.NewFromString(input.Amount)
	if err != nil || !requested.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			fmt.Sprintf("amount %q must be a positive decimal", input.Amount),
			domainerror.ErrInvalidTargetAmount,
		)
	}

	applied := budget.AllocateSurplus(g, requested)
	g.ApplyPayment(applied)

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	output := &LogPaymentOutput{Goal: g, Applied: applied}

	// Goal movements are tracked against the active cycle when one
	// exists; payments between cycles still update the goal itself.
	activeCycle, err := uc.cycleRepo.FindActiveByUser(ctx, input.UserID)
	switch {
	case err == nil:
		if applied.IsPositive() {
			transaction := entity.NewTransaction(
				input.UserID,
				activeCycle.ID,
				entity.TransactionTypeGoal,
				applied,
				g.Name,
				time.Now().UTC(),
			)
			if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
				return nil, fmt.Errorf("failed to record goal transaction: %w", err)
			}
			output.Transaction = transaction
		}
	case errors.Is(err, domainerror.ErrNoActiveCycle):
		// Nothing to attach the movement to.
	default:
		return nil, fmt.Errorf("failed to look up active cycle: %w", err)
	}

	return output, nil
}

func (uc *LogPaymentUseCase) loadOwnedGoal(ctx context.Context, goalID, userID uuid.UUID) (*entity.Goal, error) {
	g, err := uc.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to the authenticated user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return g, nil
}
