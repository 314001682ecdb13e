package cycle

import (
	"context"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// loadOwnedCycle fetches a cycle and verifies the caller owns it.
func loadOwnedCycle(
	ctx context.Context,
	repo adapter.CycleRepository,
	cycleID uuid.UUID,
	userID uuid.UUID,
) (*entity.BudgetCycle, error) {
	c, err := repo.FindByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	if c.UserID != userID {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeUnauthorizedCycle,
			"cycle does not belong to the authenticated user",
			domainerror.ErrUnauthorizedCycleAccess,
		)
	}

	return c, nil
}

// loadOwnedActiveCycle is loadOwnedCycle plus a completed-cycle guard.
// All plan mutations go through here: closed cycles are immutable.
func loadOwnedActiveCycle(
	ctx context.Context,
	repo adapter.CycleRepository,
	cycleID uuid.UUID,
	userID uuid.UUID,
) (*entity.BudgetCycle, error) {
	c, err := loadOwnedCycle(ctx, repo, cycleID, userID)
	if err != nil {
		return nil, err
	}

	if !c.IsActive() {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeCycleCompleted,
			"cycle is already completed",
			domainerror.ErrCycleCompleted,
		)
	}

	return c, nil
}
