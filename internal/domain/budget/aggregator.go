package budget

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/domain/valueobject"
)

// hundred is the percentage scale factor.
var hundred = decimal.NewFromInt(100)

// Aggregate reduces a cycle's plan and ledger into the summary figures the
// client displays. All sums are exact decimal arithmetic; rounding to two
// decimals happens only at the presentation boundary.
func Aggregate(
	income []*entity.BudgetItem,
	expenses []*entity.BudgetItem,
	transactions []*entity.Transaction,
) valueobject.BudgetSummary {
	summary := valueobject.BudgetSummary{
		TotalExpectedIncome:   decimal.Zero,
		TotalExpectedExpenses: decimal.Zero,
		TotalReceivedIncome:   decimal.Zero,
		TotalExpensesPaid:     decimal.Zero,
	}

	for _, item := range income {
		summary.TotalExpectedIncome = summary.TotalExpectedIncome.Add(item.AmountOrZero())
	}
	for _, item := range expenses {
		summary.TotalExpectedExpenses = summary.TotalExpectedExpenses.Add(item.AmountOrZero())
	}
	summary.ExpectedSurplus = summary.TotalExpectedIncome.Sub(summary.TotalExpectedExpenses)

	spentByLabel := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if txn.IsReversal {
			// A reversal carries the opposite type of the entry it
			// cancels, so it backs the amount out of the original
			// bucket rather than counting toward the other side.
			switch txn.Type {
			case entity.TransactionTypeIncome:
				summary.TotalExpensesPaid = summary.TotalExpensesPaid.Sub(txn.Amount)
				spentByLabel[txn.CategoryName] = spentByLabel[txn.CategoryName].Sub(txn.Amount)
			case entity.TransactionTypeExpense:
				summary.TotalReceivedIncome = summary.TotalReceivedIncome.Sub(txn.Amount)
			}
			continue
		}
		switch txn.Type {
		case entity.TransactionTypeIncome:
			summary.TotalReceivedIncome = summary.TotalReceivedIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			summary.TotalExpensesPaid = summary.TotalExpensesPaid.Add(txn.Amount)
			spentByLabel[txn.CategoryName] = spentByLabel[txn.CategoryName].Add(txn.Amount)
		}
	}
	summary.CurrentCash = summary.TotalReceivedIncome.Sub(summary.TotalExpensesPaid)

	for _, item := range expenses {
		if item.Type != entity.ItemTypeVariable {
			continue
		}
		summary.VariableSpending = append(summary.VariableSpending, variableSpend(item, spentByLabel[item.Label]))
	}

	return summary
}

// variableSpend derives the per-item spending status of a variable
// expense. Remaining never goes negative: overspend is flagged instead.
func variableSpend(item *entity.BudgetItem, spent decimal.Decimal) valueobject.VariableSpend {
	status := valueobject.VariableSpend{
		Label:     item.Label,
		HasBudget: item.HasAmount(),
		Budgeted:  item.AmountOrZero(),
		Spent:     spent,
		Remaining: decimal.Zero,
	}

	if !status.HasBudget {
		return status
	}

	remaining := status.Budgeted.Sub(spent)
	if remaining.IsNegative() {
		status.Overspent = true
	} else {
		status.Remaining = remaining
	}

	return status
}

// Snapshot freezes a summary into the final figures recorded at cycle
// close. The close operation is the only state transition that takes this
// snapshot; it is never recomputed afterward.
func Snapshot(summary valueobject.BudgetSummary, closedAt time.Time) entity.FinalSummary {
	return entity.FinalSummary{
		PlannedIncome:   summary.TotalExpectedIncome,
		ActualIncome:    summary.TotalReceivedIncome,
		PlannedExpenses: summary.TotalExpectedExpenses,
		ActualExpenses:  summary.TotalExpensesPaid,
		ActualSurplus:   summary.TotalReceivedIncome.Sub(summary.TotalExpensesPaid),
		ClosedAt:        closedAt,
	}
}

// ProgressPercent computes current/target as a percentage clamped to
// [0, 100]. A zero or negative target yields 0 instead of dividing by
// zero; progress beyond the target caps at 100.
func ProgressPercent(current, target decimal.Decimal) decimal.Decimal {
	if target.Sign() <= 0 {
		return decimal.Zero
	}
	percent := current.Div(target).Mul(hundred)
	if percent.IsNegative() {
		return decimal.Zero
	}
	if percent.Cmp(hundred) > 0 {
		return hundred
	}
	return percent
}

// ParseAmount converts a decimal amount string from the client into an
// exact decimal. Empty strings mean "not yet pledged" and map to nil.
// Non-numeric or negative input is rejected as an invalid amount.
func ParseAmount(raw string) (*decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAmount,
			"amount is not a valid decimal",
			domainerror.ErrInvalidAmount,
		)
	}
	if amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	return &amount, nil
}
