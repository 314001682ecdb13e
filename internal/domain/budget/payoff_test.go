package budget

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
	"github.com/check2check/backend/internal/domain/valueobject"
)

func debt(label, balance, rate string) valueobject.Debt {
	return valueobject.Debt{
		Label:        label,
		Balance:      decimal.RequireFromString(balance),
		InterestRate: decimal.RequireFromString(rate),
	}
}

func rankedLabels(ranked []valueobject.RankedDebt) []string {
	labels := make([]string, len(ranked))
	for i, r := range ranked {
		labels[i] = r.Label
	}
	return labels
}

func TestRankDebts(t *testing.T) {
	t.Run("avalanche sorts by rate descending with stable ties", func(t *testing.T) {
		debts := []valueobject.Debt{
			debt("A", "1000", "10"),
			debt("B", "1000", "20"),
			debt("C", "1000", "20"),
		}

		ranked := RankDebts(debts, entity.StrategyAvalanche, nil)

		want := []string{"B", "C", "A"}
		got := rankedLabels(ranked)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("avalanche order = %v, want %v", got, want)
			}
		}
	})

	t.Run("snowball sorts by balance ascending with stable ties", func(t *testing.T) {
		debts := []valueobject.Debt{
			debt("A", "500", "5"),
			debt("B", "100", "5"),
			debt("C", "100", "5"),
		}

		ranked := RankDebts(debts, entity.StrategySnowball, nil)

		want := []string{"B", "C", "A"}
		got := rankedLabels(ranked)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("snowball order = %v, want %v", got, want)
			}
		}
	})

	t.Run("first debt without an active goal is recommended", func(t *testing.T) {
		debts := []valueobject.Debt{
			debt("Car Loan", "4000", "18"),
			debt("Visa", "2000", "24"),
		}
		active := map[string]struct{}{
			entity.DebtGoalName("Visa"): {},
		}

		ranked := RankDebts(debts, entity.StrategyAvalanche, active)

		// Visa ranks first but is locked behind its active goal.
		if !ranked[0].GoalActive || ranked[0].Recommended {
			t.Errorf("expected Visa locked and not recommended, got %+v", ranked[0])
		}
		if !ranked[1].Recommended || ranked[1].Label != "Car Loan" {
			t.Errorf("expected Car Loan recommended, got %+v", ranked[1])
		}
	})

	t.Run("ranks are sequential from one", func(t *testing.T) {
		debts := []valueobject.Debt{
			debt("A", "100", "1"),
			debt("B", "200", "2"),
			debt("C", "300", "3"),
		}

		ranked := RankDebts(debts, entity.StrategySnowball, nil)

		for i, r := range ranked {
			if r.Rank != i+1 {
				t.Errorf("entry %d has rank %d", i, r.Rank)
			}
		}
	})
}

func TestSplitHybrid(t *testing.T) {
	t.Run("splits surplus evenly when both sides have need", func(t *testing.T) {
		split := SplitHybrid(
			decimal.RequireFromString("100"),
			decimal.RequireFromString("500"),
			decimal.RequireFromString("500"),
		)

		if split.ToDebt.String() != "50" || split.ToSavings.String() != "50" {
			t.Errorf("expected 50/50, got %s/%s", split.ToDebt, split.ToSavings)
		}
	})

	t.Run("all to savings when debt need is met", func(t *testing.T) {
		split := SplitHybrid(
			decimal.RequireFromString("100"),
			decimal.Zero,
			decimal.RequireFromString("500"),
		)

		if !split.ToDebt.IsZero() || split.ToSavings.String() != "100" {
			t.Errorf("expected 0/100, got %s/%s", split.ToDebt, split.ToSavings)
		}
	})

	t.Run("all to debt when emergency fund is met", func(t *testing.T) {
		split := SplitHybrid(
			decimal.RequireFromString("100"),
			decimal.RequireFromString("500"),
			decimal.Zero,
		)

		if split.ToDebt.String() != "100" || !split.ToSavings.IsZero() {
			t.Errorf("expected 100/0, got %s/%s", split.ToDebt, split.ToSavings)
		}
	})

	t.Run("halves are capped by each side's need", func(t *testing.T) {
		split := SplitHybrid(
			decimal.RequireFromString("100"),
			decimal.RequireFromString("30"),
			decimal.RequireFromString("500"),
		)

		if split.ToDebt.String() != "30" {
			t.Errorf("expected debt half capped at 30, got %s", split.ToDebt)
		}
		if split.ToSavings.String() != "50" {
			t.Errorf("expected savings half 50, got %s", split.ToSavings)
		}
	})

	t.Run("non-positive surplus allocates nothing", func(t *testing.T) {
		split := SplitHybrid(decimal.Zero, decimal.RequireFromString("10"), decimal.RequireFromString("10"))

		if !split.ToDebt.IsZero() || !split.ToSavings.IsZero() {
			t.Errorf("expected zero split, got %s/%s", split.ToDebt, split.ToSavings)
		}
	})
}

func TestAllocateSurplus(t *testing.T) {
	t.Run("caps at remaining balance for debt goals", func(t *testing.T) {
		goal := entity.NewDebtGoal(uuid.New(), "Visa", decimal.RequireFromString("120"), nil, entity.StrategyAvalanche)

		applied := AllocateSurplus(goal, decimal.RequireFromString("500"))

		if applied.String() != "120" {
			t.Errorf("expected 120, got %s", applied)
		}
	})

	t.Run("caps at distance to target for savings goals", func(t *testing.T) {
		goal := entity.NewSavingsGoal(uuid.New(), "Emergency Fund", decimal.RequireFromString("1000"))
		goal.ApplyPayment(decimal.RequireFromString("900"))

		applied := AllocateSurplus(goal, decimal.RequireFromString("500"))

		if applied.String() != "100" {
			t.Errorf("expected 100, got %s", applied)
		}
	})

	t.Run("never exceeds the requested amount", func(t *testing.T) {
		goal := entity.NewDebtGoal(uuid.New(), "Visa", decimal.RequireFromString("5000"), nil, entity.StrategyAvalanche)

		applied := AllocateSurplus(goal, decimal.RequireFromString("75"))

		if applied.String() != "75" {
			t.Errorf("expected 75, got %s", applied)
		}
	})

	t.Run("negative request yields zero", func(t *testing.T) {
		goal := entity.NewDebtGoal(uuid.New(), "Visa", decimal.RequireFromString("5000"), nil, entity.StrategyAvalanche)

		applied := AllocateSurplus(goal, decimal.RequireFromString("-10"))

		if !applied.IsZero() {
			t.Errorf("expected 0, got %s", applied)
		}
	})

	t.Run("payment completes the goal when remaining hits zero", func(t *testing.T) {
		goal := entity.NewDebtGoal(uuid.New(), "Visa", decimal.RequireFromString("100"), nil, entity.StrategySnowball)

		applied := AllocateSurplus(goal, decimal.RequireFromString("100"))
		goal.ApplyPayment(applied)

		if goal.Status != entity.GoalStatusCompleted {
			t.Errorf("expected goal completed, got %s", goal.Status)
		}
		if goal.CompletedAt == nil {
			t.Error("expected CompletedAt to be set")
		}
	})
}
