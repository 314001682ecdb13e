// Package valueobject contains domain value objects for the Check2Check system.
package valueobject

import (
	"github.com/shopspring/decimal"
)

// Debt is a payoff-planner input: one debt-carrying budget item reduced to
// the fields the ranking cares about.
type Debt struct {
	Label        string
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
}

// RankedDebt is one entry of an ordered payoff target list.
type RankedDebt struct {
	Debt
	Rank int
	// Recommended marks the first debt in sorted order without an active
	// payoff goal referencing it.
	Recommended bool
	// GoalActive marks debts already locked behind an active goal; they
	// stay listed but are excluded from recommendation.
	GoalActive bool
}

// HybridSplit is the fund allocation produced by the hybrid strategy:
// surplus divided between the top-ranked debt and an emergency savings goal.
type HybridSplit struct {
	ToDebt    decimal.Decimal
	ToSavings decimal.Decimal
}
