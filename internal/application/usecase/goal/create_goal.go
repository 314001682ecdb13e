// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// CreateGoalInput represents the input for creating a goal.
// For debt goals, DebtLabel names the budget item being paid off and the
// goal name is derived from it; Name is used for savings goals only.
type CreateGoalInput struct {
	UserID   uuid.UUID
	GoalType entity.GoalType

	Name         string
	TargetAmount string

	DebtLabel    string
	Balance      string
	InterestRate string
	Strategy     entity.PayoffStrategy
}

// CreateGoalOutput represents the output of creating a goal.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute validates the input and creates the goal. Goal names are
// unique per user among non-deleted goals.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	var newGoal *entity.Goal

	switch input.GoalType {
	case entity.GoalTypeDebtReduction:
		g, err := uc.buildDebtGoal(input)
		if err != nil {
			return nil, err
		}
		newGoal = g
	case entity.GoalTypeSavings:
		g, err := uc.buildSavingsGoal(input)
		if err != nil {
			return nil, err
		}
		newGoal = g
	default:
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal type must be 'savings' or 'debt_reduction'",
			nil,
		)
	}

	existing, err := uc.goalRepo.FindByName(ctx, input.UserID, newGoal.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalAlreadyExists,
			fmt.Sprintf("a goal named %q already exists", newGoal.Name),
			domainerror.ErrGoalAlreadyExists,
		)
	}

	if err := uc.goalRepo.Create(ctx, newGoal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: newGoal}, nil
}

func (uc *CreateGoalUseCase) buildDebtGoal(input CreateGoalInput) (*entity.Goal, error) {
	if input.DebtLabel == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"debt label is required for debt goals",
			nil,
		)
	}

	switch input.Strategy {
	case entity.StrategyAvalanche, entity.StrategySnowball, entity.StrategyHybrid:
	default:
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidStrategy,
			"strategy must be 'avalanche', 'snowball', or 'hybrid'",
			domainerror.ErrInvalidStrategy,
		)
	}

	balance, err := decimal.NewFromString(input.Balance)
	if err != nil || !balance.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			fmt.Sprintf("balance %q must be a positive decimal", input.Balance),
			domainerror.ErrInvalidTargetAmount,
		)
	}

	var interestRate *decimal.Decimal
	if input.InterestRate != "" {
		rate, err := decimal.NewFromString(input.InterestRate)
		if err != nil || rate.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				fmt.Sprintf("interest rate %q must be a non-negative decimal", input.InterestRate),
				domainerror.ErrInvalidTargetAmount,
			)
		}
		interestRate = &rate
	}

	return entity.NewDebtGoal(input.UserID, input.DebtLabel, balance, interestRate, input.Strategy), nil
}

func (uc *CreateGoalUseCase) buildSavingsGoal(input CreateGoalInput) (*entity.Goal, error) {
	if input.Name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"name is required for savings goals",
			nil,
		)
	}

	target, err := decimal.NewFromString(input.TargetAmount)
	if err != nil || !target.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			fmt.Sprintf("target amount %q must be a positive decimal", input.TargetAmount),
			domainerror.ErrInvalidTargetAmount,
		)
	}

	return entity.NewSavingsGoal(input.UserID, input.Name, target), nil
}
