package budget

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
	"github.com/check2check/backend/internal/domain/valueobject"
)

// RankDebts orders debts by the chosen payoff strategy and marks the
// recommended next target. Avalanche sorts by descending interest rate,
// snowball by ascending balance; both break ties by original input order.
// The hybrid strategy targets by avalanche order (its 50/50 split is
// computed separately by SplitHybrid).
//
// activeGoalNames holds the names of the caller's active goals; the first
// debt whose "Pay Off: {label}" goal is not active is recommended, debts
// with an active goal stay listed behind a "Goal Active" indicator.
func RankDebts(
	debts []valueobject.Debt,
	strategy entity.PayoffStrategy,
	activeGoalNames map[string]struct{},
) []valueobject.RankedDebt {
	ranked := make([]valueobject.RankedDebt, len(debts))
	for i, debt := range debts {
		ranked[i] = valueobject.RankedDebt{Debt: debt}
	}

	switch strategy {
	case entity.StrategySnowball:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Balance.Cmp(ranked[j].Balance) < 0
		})
	default: // avalanche and hybrid both target by interest rate
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].InterestRate.Cmp(ranked[j].InterestRate) > 0
		})
	}

	recommended := false
	for i := range ranked {
		ranked[i].Rank = i + 1
		if _, ok := activeGoalNames[entity.DebtGoalName(ranked[i].Label)]; ok {
			ranked[i].GoalActive = true
			continue
		}
		if !recommended {
			ranked[i].Recommended = true
			recommended = true
		}
	}

	return ranked
}

// SplitHybrid divides a surplus 50/50 between the top-ranked debt and the
// linked emergency-savings goal. When exactly one side has remaining need,
// the full surplus goes to the other side. Each half is additionally
// capped by its side's remaining need.
func SplitHybrid(surplus, debtNeed, savingsNeed decimal.Decimal) valueobject.HybridSplit {
	if surplus.Sign() <= 0 {
		return valueobject.HybridSplit{ToDebt: decimal.Zero, ToSavings: decimal.Zero}
	}
	if debtNeed.IsNegative() {
		debtNeed = decimal.Zero
	}
	if savingsNeed.IsNegative() {
		savingsNeed = decimal.Zero
	}

	switch {
	case debtNeed.IsZero() && savingsNeed.IsZero():
		return valueobject.HybridSplit{ToDebt: decimal.Zero, ToSavings: decimal.Zero}
	case debtNeed.IsZero():
		return valueobject.HybridSplit{ToDebt: decimal.Zero, ToSavings: decimal.Min(surplus, savingsNeed)}
	case savingsNeed.IsZero():
		return valueobject.HybridSplit{ToDebt: decimal.Min(surplus, debtNeed), ToSavings: decimal.Zero}
	}

	half := surplus.DivRound(decimal.NewFromInt(2), 2)
	return valueobject.HybridSplit{
		ToDebt:    decimal.Min(half, debtNeed),
		ToSavings: decimal.Min(surplus.Sub(half), savingsNeed),
	}
}

// AllocateSurplus caps a proposed fund application at the goal's remaining
// need so a goal is never credited beyond what it can absorb. The result
// never exceeds the requested amount and never goes negative.
func AllocateSurplus(goal *entity.Goal, requested decimal.Decimal) decimal.Decimal {
	if requested.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.Min(requested, goal.RemainingNeed())
}
