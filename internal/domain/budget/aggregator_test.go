package budget

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/domain/valueobject"
)

func ledgerEntry(txnType entity.TransactionType, amount, categoryName string) *entity.Transaction {
	return entity.NewTransaction(
		uuid.New(),
		uuid.New(),
		txnType,
		decimal.RequireFromString(amount),
		categoryName,
		time.Now().UTC(),
	)
}

func TestAggregate(t *testing.T) {
	t.Run("plan and ledger reduce to the dashboard figures", func(t *testing.T) {
		income := []*entity.BudgetItem{
			expenseItem("Paycheck", entity.ItemTypeIncome, entity.CategoryOther, "1000"),
		}
		expenses := []*entity.BudgetItem{
			expenseItem("Rent", entity.ItemTypeRecurring, entity.CategoryHousing, "800"),
			expenseItem("Groceries", entity.ItemTypeVariable, entity.CategoryVariable, "200"),
		}
		transactions := []*entity.Transaction{
			ledgerEntry(entity.TransactionTypeIncome, "1000", "Paycheck"),
			ledgerEntry(entity.TransactionTypeExpense, "800", "Rent"),
			ledgerEntry(entity.TransactionTypeExpense, "150", "Groceries"),
		}

		summary := Aggregate(income, expenses, transactions)

		if !summary.ExpectedSurplus.IsZero() {
			t.Errorf("expected surplus 0, got %s", summary.ExpectedSurplus)
		}
		if summary.CurrentCash.String() != "50" {
			t.Errorf("expected current cash 50, got %s", summary.CurrentCash)
		}
		if len(summary.VariableSpending) != 1 {
			t.Fatalf("expected 1 variable spend entry, got %d", len(summary.VariableSpending))
		}
		groceries := summary.VariableSpending[0]
		if groceries.Remaining.String() != "50" {
			t.Errorf("expected groceries remaining 50, got %s", groceries.Remaining)
		}
		if groceries.Overspent {
			t.Error("groceries must not be flagged overspent")
		}
	})

	t.Run("income reversal does not count as variable spending", func(t *testing.T) {
		income := []*entity.BudgetItem{
			expenseItem("Side Gig", entity.ItemTypeIncome, entity.CategoryOther, "300"),
		}
		expenses := []*entity.BudgetItem{
			expenseItem("Side Gig", entity.ItemTypeVariable, entity.CategoryVariable, "100"),
		}
		// Settling the income item and then reversing it leaves an
		// expense-typed reversal under the shared label.
		reversal := ledgerEntry(entity.TransactionTypeExpense, "300", "Side Gig")
		reversal.IsReversal = true
		transactions := []*entity.Transaction{
			ledgerEntry(entity.TransactionTypeIncome, "300", "Side Gig"),
			reversal,
		}

		summary := Aggregate(income, expenses, transactions)

		if !summary.TotalReceivedIncome.IsZero() {
			t.Errorf("expected received income 0 after reversal, got %s", summary.TotalReceivedIncome)
		}
		if !summary.TotalExpensesPaid.IsZero() {
			t.Errorf("expected expenses paid 0, got %s", summary.TotalExpensesPaid)
		}
		if len(summary.VariableSpending) != 1 {
			t.Fatalf("expected 1 variable spend entry, got %d", len(summary.VariableSpending))
		}
		sideGig := summary.VariableSpending[0]
		if !sideGig.Spent.IsZero() {
			t.Errorf("expected variable spent 0, got %s", sideGig.Spent)
		}
		if sideGig.Overspent {
			t.Error("variable item must not be flagged overspent by a reversal")
		}
	})

	t.Run("reversal of a logged spend restores the variable budget", func(t *testing.T) {
		expenses := []*entity.BudgetItem{
			expenseItem("Groceries", entity.ItemTypeVariable, entity.CategoryVariable, "200"),
		}
		spend := ledgerEntry(entity.TransactionTypeExpense, "150", "Groceries")
		undo := ledgerEntry(entity.TransactionTypeIncome, "150", "Groceries")
		undo.IsReversal = true

		summary := Aggregate(nil, expenses, []*entity.Transaction{spend, undo})

		if !summary.TotalExpensesPaid.IsZero() {
			t.Errorf("expected expenses paid 0 after reversal, got %s", summary.TotalExpensesPaid)
		}
		groceries := summary.VariableSpending[0]
		if !groceries.Spent.IsZero() {
			t.Errorf("expected variable spent 0, got %s", groceries.Spent)
		}
		if groceries.Remaining.String() != "200" {
			t.Errorf("expected remaining 200, got %s", groceries.Remaining)
		}
	})

	t.Run("zero amount item does not change totals", func(t *testing.T) {
		income := []*entity.BudgetItem{
			expenseItem("Paycheck", entity.ItemTypeIncome, entity.CategoryOther, "1000"),
		}
		base := Aggregate(income, nil, nil)

		withZero := append(income, expenseItem("Bonus", entity.ItemTypeIncome, entity.CategoryOther, "0"))
		augmented := Aggregate(withZero, nil, nil)

		if !base.TotalExpectedIncome.Equal(augmented.TotalExpectedIncome) {
			t.Errorf("zero-amount item changed total: %s vs %s",
				base.TotalExpectedIncome, augmented.TotalExpectedIncome)
		}
	})

	t.Run("current cash is invariant under transaction reordering", func(t *testing.T) {
		transactions := []*entity.Transaction{
			ledgerEntry(entity.TransactionTypeIncome, "1200.55", "Paycheck"),
			ledgerEntry(entity.TransactionTypeExpense, "399.99", "Rent"),
			ledgerEntry(entity.TransactionTypeExpense, "0.01", "Fees"),
			ledgerEntry(entity.TransactionTypeIncome, "15.45", "Refund"),
		}
		reversed := []*entity.Transaction{
			transactions[3], transactions[2], transactions[1], transactions[0],
		}

		forward := Aggregate(nil, nil, transactions)
		backward := Aggregate(nil, nil, reversed)

		if !forward.CurrentCash.Equal(backward.CurrentCash) {
			t.Errorf("current cash depends on order: %s vs %s", forward.CurrentCash, backward.CurrentCash)
		}
		if forward.CurrentCash.String() != "816" {
			t.Errorf("expected current cash 816, got %s", forward.CurrentCash)
		}
	})

	t.Run("variable remaining never negative on overspend", func(t *testing.T) {
		expenses := []*entity.BudgetItem{
			expenseItem("Groceries", entity.ItemTypeVariable, entity.CategoryVariable, "100"),
		}
		transactions := []*entity.Transaction{
			ledgerEntry(entity.TransactionTypeExpense, "175", "Groceries"),
		}

		summary := Aggregate(nil, expenses, transactions)

		spend := summary.VariableSpending[0]
		if spend.Remaining.Sign() < 0 {
			t.Errorf("remaining went negative: %s", spend.Remaining)
		}
		if !spend.Remaining.IsZero() {
			t.Errorf("expected remaining 0, got %s", spend.Remaining)
		}
		if !spend.Overspent {
			t.Error("expected overspend to be flagged")
		}
	})

	t.Run("unset variable budget renders input pending", func(t *testing.T) {
		expenses := []*entity.BudgetItem{
			expenseItem("Fun Money", entity.ItemTypeVariable, entity.CategoryVariable, ""),
		}

		summary := Aggregate(nil, expenses, nil)

		if len(summary.VariableSpending) != 1 {
			t.Fatal("unset-amount variable item must still appear")
		}
		if summary.VariableSpending[0].HasBudget {
			t.Error("expected HasBudget false for unset amount")
		}
	})

	t.Run("deficit label follows surplus sign", func(t *testing.T) {
		income := []*entity.BudgetItem{
			expenseItem("Paycheck", entity.ItemTypeIncome, entity.CategoryOther, "500"),
		}
		expenses := []*entity.BudgetItem{
			expenseItem("Rent", entity.ItemTypeRecurring, entity.CategoryHousing, "800"),
		}

		summary := Aggregate(income, expenses, nil)

		if summary.ExpectedSurplus.String() != "-300" {
			t.Errorf("expected surplus -300, got %s", summary.ExpectedSurplus)
		}
		if summary.SurplusLabel() != valueobject.LabelExpectedDeficit {
			t.Errorf("expected deficit label, got %s", summary.SurplusLabel())
		}
	})

	t.Run("goal transactions do not touch cash", func(t *testing.T) {
		transactions := []*entity.Transaction{
			ledgerEntry(entity.TransactionTypeIncome, "100", "Paycheck"),
			ledgerEntry(entity.TransactionTypeGoal, "40", "Pay Off: Car Loan"),
		}

		summary := Aggregate(nil, nil, transactions)

		if summary.CurrentCash.String() != "100" {
			t.Errorf("expected current cash 100, got %s", summary.CurrentCash)
		}
	})

	t.Run("aggregation is deterministic for identical input", func(t *testing.T) {
		income := []*entity.BudgetItem{
			expenseItem("Paycheck", entity.ItemTypeIncome, entity.CategoryOther, "1234.56"),
		}
		transactions := []*entity.Transaction{
			ledgerEntry(entity.TransactionTypeIncome, "1234.56", "Paycheck"),
		}

		first := Aggregate(income, nil, transactions)
		second := Aggregate(income, nil, transactions)

		if !first.TotalReceivedIncome.Equal(second.TotalReceivedIncome) ||
			!first.CurrentCash.Equal(second.CurrentCash) {
			t.Error("repeated aggregation produced different output")
		}
	})
}

func TestSnapshot(t *testing.T) {
	closedAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	summary := valueobject.BudgetSummary{
		TotalExpectedIncome:   decimal.RequireFromString("1000"),
		TotalExpectedExpenses: decimal.RequireFromString("900"),
		TotalReceivedIncome:   decimal.RequireFromString("980"),
		TotalExpensesPaid:     decimal.RequireFromString("910"),
	}

	final := Snapshot(summary, closedAt)

	if final.PlannedIncome.String() != "1000" || final.PlannedExpenses.String() != "900" {
		t.Errorf("planned figures not carried over: %+v", final)
	}
	if final.ActualSurplus.String() != "70" {
		t.Errorf("expected actual surplus 70, got %s", final.ActualSurplus)
	}
	if !final.ClosedAt.Equal(closedAt) {
		t.Errorf("expected close time %s, got %s", closedAt, final.ClosedAt)
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		name    string
		current string
		target  string
		want    string
	}{
		{"halfway", "50", "100", "50"},
		{"complete", "100", "100", "100"},
		{"beyond target clamps to 100", "250", "100", "100"},
		{"zero target clamps to 0", "50", "0", "0"},
		{"negative target clamps to 0", "50", "-10", "0"},
		{"negative current clamps to 0", "-5", "100", "0"},
		{"fractional progress keeps precision", "1", "3", "33.3333333333333333"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProgressPercent(
				decimal.RequireFromString(tc.current),
				decimal.RequireFromString(tc.target),
			)
			if got.String() != tc.want {
				t.Errorf("ProgressPercent(%s, %s) = %s, want %s", tc.current, tc.target, got, tc.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("empty string means unset", func(t *testing.T) {
		amount, err := ParseAmount("  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount != nil {
			t.Errorf("expected nil for blank input, got %s", amount)
		}
	})

	t.Run("valid decimal parses exactly", func(t *testing.T) {
		amount, err := ParseAmount("123.45")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if amount == nil || amount.String() != "123.45" {
			t.Errorf("expected 123.45, got %v", amount)
		}
	})

	t.Run("non-numeric input is rejected", func(t *testing.T) {
		_, err := ParseAmount("twelve")
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("negative input is rejected", func(t *testing.T) {
		_, err := ParseAmount("-5")
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
