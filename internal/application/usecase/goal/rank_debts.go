package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/budget"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/domain/valueobject"
)

// RankDebtsInput represents the input for ranking debts.
type RankDebtsInput struct {
	UserID   uuid.UUID
	Strategy entity.PayoffStrategy
	// Explain asks the advisor for a plain-language walkthrough of the
	// plan. Advisor failures never fail the ranking.
	Explain bool
}

// RankDebtsOutput represents the output of ranking debts.
type RankDebtsOutput struct {
	RankedDebts []valueobject.RankedDebt
	// HybridSplit is set only for the hybrid strategy.
	HybridSplit *valueobject.HybridSplit
	// Explanation is empty unless requested and the advisor succeeded.
	Explanation string
}

// RankDebtsUseCase handles building the payoff plan from the active
// cycle's debt items.
type RankDebtsUseCase struct {
	cycleRepo       adapter.CycleRepository
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	advisor         adapter.AdvisorService
}

// NewRankDebtsUseCase creates a new RankDebtsUseCase instance.
// advisor may be nil when no explanation backend is configured.
func NewRankDebtsUseCase(
	cycleRepo adapter.CycleRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	advisor adapter.AdvisorService,
) *RankDebtsUseCase {
	return &RankDebtsUseCase{
		cycleRepo:       cycleRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		advisor:         advisor,
	}
}

// Execute ranks the active cycle's debts by the chosen strategy. The
// hybrid strategy additionally splits the cycle's expected surplus
// between the top debt and savings goals.
func (uc *RankDebtsUseCase) Execute(ctx context.Context, input RankDebtsInput) (*RankDebtsOutput, error) {
	switch input.Strategy {
	case entity.StrategyAvalanche, entity.StrategySnowball, entity.StrategyHybrid:
	default:
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidStrategy,
			"strategy must be 'avalanche', 'snowball', or 'hybrid'",
			domainerror.ErrInvalidStrategy,
		)
	}

	activeCycle, err := uc.cycleRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	debts := collectDebts(activeCycle.ExpenseItems)

	activeGoals, err := uc.goalRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active goals: %w", err)
	}
	activeNames := make(map[string]struct{}, len(activeGoals))
	for _, g := range activeGoals {
		activeNames[g.Name] = struct{}{}
	}

	output := &RankDebtsOutput{
		RankedDebts: budget.RankDebts(debts, input.Strategy, activeNames),
	}

	surplus := decimal.Zero
	if input.Strategy == entity.StrategyHybrid || input.Explain {
		transactions, err := uc.transactionRepo.FindByCycle(ctx, activeCycle.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		summary := budget.Aggregate(activeCycle.IncomeItems, activeCycle.ExpenseItems, transactions)
		surplus = summary.ExpectedSurplus
	}

	if input.Strategy == entity.StrategyHybrid {
		split := budget.SplitHybrid(surplus, debtNeed(output.RankedDebts), savingsNeed(activeGoals))
		output.HybridSplit = &split
	}

	if input.Explain && uc.advisor != nil {
		explanation, err := uc.advisor.ExplainPayoffPlan(ctx, adapter.PayoffExplanationInput{
			Strategy:    string(input.Strategy),
			RankedDebts: output.RankedDebts,
			Surplus:     surplus.StringFixed(2),
		})
		if err != nil {
			// The plan stands on its own; log and move on.
			slog.WarnContext(ctx, "payoff explanation unavailable", "error", err)
		} else {
			output.Explanation = explanation
		}
	}

	return output, nil
}

// collectDebts extracts the debt view from the cycle's expense items.
// Items without a recorded principal balance cannot be ranked.
func collectDebts(items []*entity.BudgetItem) []valueobject.Debt {
	var debts []valueobject.Debt
	for _, item := range items {
		if !entity.IsDebtCategory(item.Category) || item.PrincipalBalance == nil {
			continue
		}
		rate := decimal.Zero
		if item.InterestRate != nil {
			rate = *item.InterestRate
		}
		debts = append(debts, valueobject.Debt{
			Label:        item.Label,
			Balance:      *item.PrincipalBalance,
			InterestRate: rate,
		})
	}
	return debts
}

// debtNeed is the remaining balance of the recommended debt, the target
// of the hybrid split's debt half.
func debtNeed(ranked []valueobject.RankedDebt) decimal.Decimal {
	for _, debt := range ranked {
		if debt.Recommended {
			return debt.Balance
		}
	}
	return decimal.Zero
}

// savingsNeed sums the remaining need across active savings goals.
func savingsNeed(goals []*entity.Goal) decimal.Decimal {
	total := decimal.Zero
	for _, g := range goals {
		if g.GoalType == entity.GoalTypeSavings {
			total = total.Add(g.RemainingNeed())
		}
	}
	return total
}
