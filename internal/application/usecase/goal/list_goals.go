package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/budget"
	"github.com/check2check/backend/internal/domain/entity"
)

// GoalProgress pairs a goal with its derived progress figure.
type GoalProgress struct {
	Goal *entity.Goal
	// Percent is clamped to [0, 100]. For debt goals it measures how much
	// of the original balance has been paid down.
	Percent decimal.Decimal
}

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
	// ActiveOnly excludes completed goals from the listing.
	ActiveOnly bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalProgress
}

// ListGoalsUseCase handles the goals overview with progress figures.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists the user's goals with computed progress.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	var (
		goals []*entity.Goal
		err   error
	)
	if input.ActiveOnly {
		goals, err = uc.goalRepo.FindActiveByUser(ctx, input.UserID)
	} else {
		goals, err = uc.goalRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{Goals: make([]GoalProgress, 0, len(goals))}
	for _, g := range goals {
		// Debt progress counts money paid off, not money remaining.
		current := g.CurrentAmount
		if g.GoalType == entity.GoalTypeDebtReduction {
			current = g.TargetAmount.Sub(g.CurrentAmount)
		}
		output.Goals = append(output.Goals, GoalProgress{
			Goal:    g,
			Percent: budget.ProgressPercent(current, g.TargetAmount),
		})
	}

	return output, nil
}
