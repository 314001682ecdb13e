// Package valueobject contains domain value objects for the Check2Check system.
package valueobject

import (
	"github.com/shopspring/decimal"
)

// Surplus/deficit display labels.
const (
	LabelExpectedSurplus = "Expected Surplus"
	LabelExpectedDeficit = "Expected Deficit"
)

// VariableSpend tracks one variable expense item against its budget.
type VariableSpend struct {
	Label string
	// HasBudget is false while the item's amount is still unset; such items
	// are shown in an "input pending" state rather than excluded.
	HasBudget bool
	Budgeted  decimal.Decimal
	Spent     decimal.Decimal
	// Remaining is clamped to zero; overspend is flagged, never negative.
	Remaining decimal.Decimal
	Overspent bool
}

// BudgetSummary holds the derived figures of a budget cycle. It is a pure
// function of the cycle's items and transactions and is recomputed on
// every refresh rather than maintained incrementally.
type BudgetSummary struct {
	TotalExpectedIncome   decimal.Decimal
	TotalExpectedExpenses decimal.Decimal
	ExpectedSurplus       decimal.Decimal

	TotalReceivedIncome decimal.Decimal
	TotalExpensesPaid   decimal.Decimal
	CurrentCash         decimal.Decimal

	VariableSpending []VariableSpend
}

// SurplusLabel returns the display label determined by the sign of the
// expected surplus.
func (s BudgetSummary) SurplusLabel() string {
	if s.ExpectedSurplus.IsNegative() {
		return LabelExpectedDeficit
	}
	return LabelExpectedSurplus
}
