// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the kind of long-lived target.
type GoalType string

const (
	GoalTypeSavings       GoalType = "savings"
	GoalTypeDebtReduction GoalType = "debt_reduction"
)

// PayoffStrategy represents the fund-targeting strategy attached to a goal.
type PayoffStrategy string

const (
	StrategyAvalanche PayoffStrategy = "avalanche"
	StrategySnowball  PayoffStrategy = "snowball"
	StrategyHybrid    PayoffStrategy = "hybrid"
	StrategySavings   PayoffStrategy = "savings"
)

// GoalStatus represents the lifecycle state of a goal.
// Completed is terminal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// DebtGoalPrefix prefixes the generated name of debt payoff goals.
const DebtGoalPrefix = "Pay Off: "

// DebtGoalName returns the conventional goal name for paying off the
// budget item with the given label.
func DebtGoalName(label string) string {
	return DebtGoalPrefix + label
}

// Goal is a long-lived savings or debt-reduction target, independent of
// any single budget cycle. For debt goals CurrentAmount is the remaining
// balance decreasing toward zero; for savings goals it is the amount saved
// increasing toward TargetAmount.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	GoalType      GoalType
	Strategy      PayoffStrategy
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	// InterestRate is set for debt goals, taken from the linked item.
	InterestRate *decimal.Decimal
	Status       GoalStatus
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewDebtGoal creates a debt-reduction goal for the item with the given
// label. The original balance becomes both the target and the starting
// remaining amount.
func NewDebtGoal(userID uuid.UUID, label string, balance decimal.Decimal, interestRate *decimal.Decimal, strategy PayoffStrategy) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          DebtGoalName(label),
		GoalType:      GoalTypeDebtReduction,
		Strategy:      strategy,
		TargetAmount:  balance,
		CurrentAmount: balance,
		InterestRate:  interestRate,
		Status:        GoalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewSavingsGoal creates a savings goal with the given target.
func NewSavingsGoal(userID uuid.UUID, name string, target decimal.Decimal) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		GoalType:      GoalTypeSavings,
		Strategy:      StrategySavings,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Status:        GoalStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// RemainingNeed returns how much the goal can still absorb: the remaining
// balance for debt goals, or the distance to target for savings goals.
// Never negative.
func (g *Goal) RemainingNeed() decimal.Decimal {
	var remaining decimal.Decimal
	if g.GoalType == GoalTypeDebtReduction {
		remaining = g.CurrentAmount
	} else {
		remaining = g.TargetAmount.Sub(g.CurrentAmount)
	}
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ApplyPayment credits the given amount toward the goal and recomputes the
// status. The caller is responsible for capping the amount to the goal's
// remaining need beforehand.
func (g *Goal) ApplyPayment(amount decimal.Decimal) {
	if g.GoalType == GoalTypeDebtReduction {
		g.CurrentAmount = g.CurrentAmount.Sub(amount)
		if g.CurrentAmount.IsNegative() {
			g.CurrentAmount = decimal.Zero
		}
	} else {
		g.CurrentAmount = g.CurrentAmount.Add(amount)
	}
	g.UpdatedAt = time.Now().UTC()
	g.refreshStatus()
}

// Withdraw removes funds from a savings goal. Withdrawal is the only
// action that decreases a savings goal's current amount.
func (g *Goal) Withdraw(amount decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Sub(amount)
	if g.CurrentAmount.IsNegative() {
		g.CurrentAmount = decimal.Zero
	}
	g.UpdatedAt = time.Now().UTC()
}

// refreshStatus transitions the goal to completed once the remaining need
// reaches zero. The transition is a consequence of payment logging, not a
// separate command, and completed is terminal.
func (g *Goal) refreshStatus() {
	if g.Status != GoalStatusActive {
		return
	}
	if g.RemainingNeed().IsZero() {
		now := time.Now().UTC()
		g.Status = GoalStatusCompleted
		g.CompletedAt = &now
	}
}
