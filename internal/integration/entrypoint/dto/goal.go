package dto

import (
	"time"

	"github.com/check2check/backend/internal/application/usecase/goal"
	"github.com/check2check/backend/internal/domain/entity"
	"github.com/check2check/backend/internal/domain/valueobject"
)

// CreateGoalRequest represents the request body for goal creation. Debt
// goals take a debt label, balance, and strategy; savings goals take a
// name and target amount.
type CreateGoalRequest struct {
	GoalType string `json:"goal_type" binding:"required,oneof=savings debt_reduction"`

	Name         string `json:"name,omitempty"`
	TargetAmount string `json:"target_amount,omitempty"`

	DebtLabel    string `json:"debt_label,omitempty"`
	Balance      string `json:"balance,omitempty"`
	InterestRate string `json:"interest_rate,omitempty"`
	Strategy     string `json:"strategy,omitempty" binding:"omitempty,oneof=avalanche snowball hybrid"`
}

// LogPaymentRequest represents the request body for crediting a goal.
type LogPaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// WithdrawRequest represents the request body for a savings withdrawal.
type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	GoalType      string     `json:"goal_type"`
	Strategy      string     `json:"strategy"`
	TargetAmount  string     `json:"target_amount"`
	CurrentAmount string     `json:"current_amount"`
	InterestRate  *string    `json:"interest_rate,omitempty"`
	Status        string     `json:"status"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// GoalProgressResponse represents a goal with its completion percentage.
type GoalProgressResponse struct {
	GoalResponse
	Percent string `json:"percent"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalProgressResponse `json:"goals"`
}

// PaymentResponse represents the result of crediting a goal.
type PaymentResponse struct {
	Goal GoalResponse `json:"goal"`
	// Applied may be less than the requested amount when the goal's
	// remaining need caps it.
	Applied     string               `json:"applied"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// WithdrawResponse represents the result of a savings withdrawal.
type WithdrawResponse struct {
	Goal        GoalResponse         `json:"goal"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// RankedDebtResponse represents one debt in a payoff plan.
type RankedDebtResponse struct {
	Rank         int    `json:"rank"`
	Label        string `json:"label"`
	Balance      string `json:"balance"`
	InterestRate string `json:"interest_rate"`
	Recommended  bool   `json:"recommended"`
	GoalActive   bool   `json:"goal_active"`
}

// HybridSplitResponse represents the surplus split of a hybrid plan.
type HybridSplitResponse struct {
	ToDebt    string `json:"to_debt"`
	ToSavings string `json:"to_savings"`
}

// PayoffPlanResponse represents a ranked payoff plan.
type PayoffPlanResponse struct {
	Strategy    string               `json:"strategy"`
	RankedDebts []RankedDebtResponse `json:"ranked_debts"`
	HybridSplit *HybridSplitResponse `json:"hybrid_split,omitempty"`
	Explanation string               `json:"explanation,omitempty"`
}

// ToGoalResponse converts a Goal entity to its response DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		GoalType:      string(g.GoalType),
		Strategy:      string(g.Strategy),
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Status:        string(g.Status),
		CompletedAt:   g.CompletedAt,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.InterestRate != nil {
		rate := g.InterestRate.String()
		response.InterestRate = &rate
	}

	return response
}

// ToGoalListResponse converts goal progress entries to a list response.
func ToGoalListResponse(progress []goal.GoalProgress) GoalListResponse {
	goals := make([]GoalProgressResponse, len(progress))
	for i, p := range progress {
		goals[i] = GoalProgressResponse{
			GoalResponse: ToGoalResponse(p.Goal),
			Percent:      p.Percent.String(),
		}
	}
	return GoalListResponse{Goals: goals}
}

// ToPayoffPlanResponse converts a RankDebtsOutput to its response DTO.
func ToPayoffPlanResponse(strategy entity.PayoffStrategy, output *goal.RankDebtsOutput) PayoffPlanResponse {
	response := PayoffPlanResponse{
		Strategy:    string(strategy),
		RankedDebts: make([]RankedDebtResponse, len(output.RankedDebts)),
		Explanation: output.Explanation,
	}
	for i, debt := range output.RankedDebts {
		response.RankedDebts[i] = toRankedDebtResponse(debt)
	}
	if output.HybridSplit != nil {
		response.HybridSplit = &HybridSplitResponse{
			ToDebt:    output.HybridSplit.ToDebt.String(),
			ToSavings: output.HybridSplit.ToSavings.String(),
		}
	}
	return response
}

func toRankedDebtResponse(debt valueobject.RankedDebt) RankedDebtResponse {
	return RankedDebtResponse{
		Rank:         debt.Rank,
		Label:        debt.Label,
		Balance:      debt.Balance.String(),
		InterestRate: debt.InterestRate.String(),
		Recommended:  debt.Recommended,
		GoalActive:   debt.GoalActive,
	}
}
