// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/check2check/backend/internal/application/usecase/cycle"
	"github.com/check2check/backend/internal/domain/entity"
	"github.com/check2check/backend/internal/domain/valueobject"
)

// ItemSpecRequest represents one budget line in a start-cycle or add-item
// request. Amount is a decimal string; empty leaves the pledge unset.
type ItemSpecRequest struct {
	Label    string `json:"label" binding:"required,min=1,max=100"`
	Type     string `json:"type" binding:"required,oneof=income recurring variable"`
	Category string `json:"category,omitempty"`
	Amount   string `json:"amount,omitempty"`
	DueDay   *int   `json:"due_day,omitempty"`
	// Debt fields, accepted only for loan and credit-card categories.
	PrincipalBalance string  `json:"principal_balance,omitempty"`
	InterestRate     string  `json:"interest_rate,omitempty"`
	MaturityDate     *string `json:"maturity_date,omitempty"`
	SpendingLimit    string  `json:"spending_limit,omitempty"`
}

// StartCycleRequest represents the request body for starting a budget cycle.
type StartCycleRequest struct {
	StartDate string            `json:"start_date" binding:"required"`
	EndDate   string            `json:"end_date" binding:"required"`
	Items     []ItemSpecRequest `json:"items,omitempty"`
}

// ItemKeyRequest addresses a budget item by its natural key.
type ItemKeyRequest struct {
	Type     string `json:"type" binding:"required,oneof=income recurring variable"`
	Category string `json:"category,omitempty"`
	Label    string `json:"label" binding:"required"`
}

// UpdateItemRequest represents the request body for editing a budget item.
// Nil fields are left unchanged; an empty amount clears the pledge.
type UpdateItemRequest struct {
	Key              ItemKeyRequest `json:"key" binding:"required"`
	Amount           *string        `json:"amount,omitempty"`
	DueDay           *int           `json:"due_day,omitempty"`
	PrincipalBalance *string        `json:"principal_balance,omitempty"`
	InterestRate     *string        `json:"interest_rate,omitempty"`
}

// ItemKeyBodyRequest wraps a bare item key for remove/settle/undo requests.
type ItemKeyBodyRequest struct {
	Key ItemKeyRequest `json:"key" binding:"required"`
}

// BudgetItemResponse represents a budget item in API responses.
type BudgetItemResponse struct {
	ID        string     `json:"id"`
	Label     string     `json:"label"`
	Type      string     `json:"type"`
	Category  string     `json:"category"`
	Amount    *string    `json:"amount"`
	DueDay    *int       `json:"due_day,omitempty"`
	IsSettled bool       `json:"is_settled"`
	SettledAt *time.Time `json:"settled_at,omitempty"`

	PrincipalBalance *string `json:"principal_balance,omitempty"`
	InterestRate     *string `json:"interest_rate,omitempty"`
	MaturityDate     *string `json:"maturity_date,omitempty"`
	SpendingLimit    *string `json:"spending_limit,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// FinalSummaryResponse represents a closed cycle's frozen totals.
type FinalSummaryResponse struct {
	PlannedIncome   string    `json:"planned_income"`
	ActualIncome    string    `json:"actual_income"`
	PlannedExpenses string    `json:"planned_expenses"`
	ActualExpenses  string    `json:"actual_expenses"`
	ActualSurplus   string    `json:"actual_surplus"`
	ClosedAt        time.Time `json:"closed_at"`
}

// CycleResponse represents a budget cycle in API responses.
type CycleResponse struct {
	ID           string                `json:"id"`
	UserID       string                `json:"user_id"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Status       string                `json:"status"`
	IncomeItems  []BudgetItemResponse  `json:"income_items"`
	ExpenseItems []BudgetItemResponse  `json:"expense_items"`
	FinalSummary *FinalSummaryResponse `json:"final_summary,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// CategoryGroupResponse represents recurring items grouped by category.
type CategoryGroupResponse struct {
	Category string               `json:"category"`
	Items    []BudgetItemResponse `json:"items"`
}

// ClassificationResponse splits the cycle's expense plan into fixed bills
// and flexible spending.
type ClassificationResponse struct {
	Recurring []CategoryGroupResponse `json:"recurring"`
	Variable  []BudgetItemResponse    `json:"variable"`
}

// VariableSpendResponse represents one flexible item's budget-vs-spent line.
type VariableSpendResponse struct {
	Label     string `json:"label"`
	HasBudget bool   `json:"has_budget"`
	Budgeted  string `json:"budgeted"`
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
	Overspent bool   `json:"overspent"`
}

// BudgetSummaryResponse represents the live dashboard totals for a cycle.
type BudgetSummaryResponse struct {
	TotalExpectedIncome   string                  `json:"total_expected_income"`
	TotalExpectedExpenses string                  `json:"total_expected_expenses"`
	ExpectedSurplus       string                  `json:"expected_surplus"`
	TotalReceivedIncome   string                  `json:"total_received_income"`
	TotalExpensesPaid     string                  `json:"total_expenses_paid"`
	CurrentCash           string                  `json:"current_cash"`
	VariableSpending      []VariableSpendResponse `json:"variable_spending"`
}

// ActiveCycleResponse represents the dashboard payload for the active cycle.
type ActiveCycleResponse struct {
	Cycle          CycleResponse          `json:"cycle"`
	Classification ClassificationResponse `json:"classification"`
	Summary        BudgetSummaryResponse  `json:"summary"`
}

// CycleListResponse represents the response for listing completed cycles.
type CycleListResponse struct {
	Cycles []CycleResponse `json:"cycles"`
}

// RemoveItemResponse reports the balancing ledger entries created by the
// removal, if any.
type RemoveItemResponse struct {
	Reversals []TransactionResponse `json:"reversals"`
}

// SettleItemResponse represents the result of settling a budget item.
type SettleItemResponse struct {
	Item        BudgetItemResponse   `json:"item"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// ToItemSpec converts an ItemSpecRequest into a use case ItemSpec.
func (r ItemSpecRequest) ToItemSpec() (cycle.ItemSpec, error) {
	spec := cycle.ItemSpec{
		Label:            r.Label,
		Type:             entity.BudgetItemType(r.Type),
		Category:         entity.ExpenseCategory(r.Category),
		Amount:           r.Amount,
		DueDay:           r.DueDay,
		PrincipalBalance: r.PrincipalBalance,
		InterestRate:     r.InterestRate,
		SpendingLimit:    r.SpendingLimit,
	}
	if r.MaturityDate != nil {
		maturity, err := time.Parse("2006-01-02", *r.MaturityDate)
		if err != nil {
			return cycle.ItemSpec{}, err
		}
		spec.MaturityDate = &maturity
	}
	return spec, nil
}

// ToItemKey converts an ItemKeyRequest into a domain item key.
func (r ItemKeyRequest) ToItemKey() entity.ItemKey {
	return entity.ItemKey{
		Type:     entity.BudgetItemType(r.Type),
		Category: entity.NormalizeCategory(entity.ExpenseCategory(r.Category)),
		Label:    r.Label,
	}
}

// ToBudgetItemResponse converts a BudgetItem entity to its response DTO.
func ToBudgetItemResponse(item *entity.BudgetItem) BudgetItemResponse {
	response := BudgetItemResponse{
		ID:        item.ID.String(),
		Label:     item.Label,
		Type:      string(item.Type),
		Category:  string(item.Category),
		DueDay:    item.DueDay,
		IsSettled: item.IsSettled,
		SettledAt: item.SettledAt,
		CreatedAt: item.CreatedAt,
	}

	if item.Amount != nil {
		amount := item.Amount.String()
		response.Amount = &amount
	}
	if item.PrincipalBalance != nil {
		balance := item.PrincipalBalance.String()
		response.PrincipalBalance = &balance
	}
	if item.InterestRate != nil {
		rate := item.InterestRate.String()
		response.InterestRate = &rate
	}
	if item.MaturityDate != nil {
		maturity := item.MaturityDate.Format("2006-01-02")
		response.MaturityDate = &maturity
	}
	if item.SpendingLimit != nil {
		limit := item.SpendingLimit.String()
		response.SpendingLimit = &limit
	}

	return response
}

// ToCycleResponse converts a BudgetCycle entity to its response DTO.
func ToCycleResponse(c *entity.BudgetCycle) CycleResponse {
	response := CycleResponse{
		ID:           c.ID.String(),
		UserID:       c.UserID.String(),
		StartDate:    c.StartDate.Format("2006-01-02"),
		EndDate:      c.EndDate.Format("2006-01-02"),
		Status:       string(c.Status),
		IncomeItems:  toItemResponses(c.IncomeItems),
		ExpenseItems: toItemResponses(c.ExpenseItems),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.FinalSummary != nil {
		summary := ToFinalSummaryResponse(*c.FinalSummary)
		response.FinalSummary = &summary
	}

	return response
}

// ToFinalSummaryResponse converts a FinalSummary to its response DTO.
func ToFinalSummaryResponse(s entity.FinalSummary) FinalSummaryResponse {
	return FinalSummaryResponse{
		PlannedIncome:   s.PlannedIncome.String(),
		ActualIncome:    s.ActualIncome.String(),
		PlannedExpenses: s.PlannedExpenses.String(),
		ActualExpenses:  s.ActualExpenses.String(),
		ActualSurplus:   s.ActualSurplus.String(),
		ClosedAt:        s.ClosedAt,
	}
}

// ToActiveCycleResponse converts a GetActiveCycleOutput to its response DTO.
func ToActiveCycleResponse(output *cycle.GetActiveCycleOutput) ActiveCycleResponse {
	classification := ClassificationResponse{
		Recurring: make([]CategoryGroupResponse, len(output.Classification.GroupedRecurring)),
		Variable:  toItemResponses(output.Classification.Variable),
	}
	for i, group := range output.Classification.GroupedRecurring {
		classification.Recurring[i] = CategoryGroupResponse{
			Category: string(group.Category),
			Items:    toItemResponses(group.Items),
		}
	}

	return ActiveCycleResponse{
		Cycle:          ToCycleResponse(output.Cycle),
		Classification: classification,
		Summary:        ToBudgetSummaryResponse(output.Summary),
	}
}

// ToBudgetSummaryResponse converts a BudgetSummary to its response DTO.
func ToBudgetSummaryResponse(s valueobject.BudgetSummary) BudgetSummaryResponse {
	spending := make([]VariableSpendResponse, len(s.VariableSpending))
	for i, line := range s.VariableSpending {
		spending[i] = VariableSpendResponse{
			Label:     line.Label,
			HasBudget: line.HasBudget,
			Budgeted:  line.Budgeted.String(),
			Spent:     line.Spent.String(),
			Remaining: line.Remaining.String(),
			Overspent: line.Overspent,
		}
	}

	return BudgetSummaryResponse{
		TotalExpectedIncome:   s.TotalExpectedIncome.String(),
		TotalExpectedExpenses: s.TotalExpectedExpenses.String(),
		ExpectedSurplus:       s.ExpectedSurplus.String(),
		TotalReceivedIncome:   s.TotalReceivedIncome.String(),
		TotalExpensesPaid:     s.TotalExpensesPaid.String(),
		CurrentCash:           s.CurrentCash.String(),
		VariableSpending:      spending,
	}
}

// ToCycleListResponse converts completed cycles to a list response.
func ToCycleListResponse(cycles []*entity.BudgetCycle) CycleListResponse {
	responses := make([]CycleResponse, len(cycles))
	for i, c := range cycles {
		responses[i] = ToCycleResponse(c)
	}
	return CycleListResponse{Cycles: responses}
}

func toItemResponses(items []*entity.BudgetItem) []BudgetItemResponse {
	responses := make([]BudgetItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToBudgetItemResponse(item)
	}
	return responses
}
