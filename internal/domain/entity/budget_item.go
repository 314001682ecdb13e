// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetItemType represents the kind of budget line (income or expense variant).
type BudgetItemType string

const (
	ItemTypeIncome    BudgetItemType = "income"
	ItemTypeRecurring BudgetItemType = "recurring"
	ItemTypeVariable  BudgetItemType = "variable"
)

// ExpenseCategory represents the category of an expense item.
// Only meaningful for recurring/variable items.
type ExpenseCategory string

const (
	CategoryOther        ExpenseCategory = "other"
	CategoryHousing      ExpenseCategory = "housing"
	CategoryUtilities    ExpenseCategory = "utilities"
	CategoryLoan         ExpenseCategory = "loan"
	CategoryCreditCard   ExpenseCategory = "credit-card"
	CategoryInsurance    ExpenseCategory = "insurance"
	CategorySubscription ExpenseCategory = "subscription"
	CategoryVariable     ExpenseCategory = "variable"
)

// knownCategories is the closed set of expense categories.
var knownCategories = map[ExpenseCategory]struct{}{
	CategoryOther:        {},
	CategoryHousing:      {},
	CategoryUtilities:    {},
	CategoryLoan:         {},
	CategoryCreditCard:   {},
	CategoryInsurance:    {},
	CategorySubscription: {},
	CategoryVariable:     {},
}

// NormalizeCategory maps unknown or missing categories to CategoryOther.
func NormalizeCategory(category ExpenseCategory) ExpenseCategory {
	if _, ok := knownCategories[category]; !ok {
		return CategoryOther
	}
	return category
}

// IsDebtCategory reports whether the category carries debt fields
// (principal balance, interest rate, maturity date).
func IsDebtCategory(category ExpenseCategory) bool {
	return category == CategoryLoan || category == CategoryCreditCard
}

// BudgetItem represents one planned income or expense line within a budget cycle.
// Within a cycle, items are addressed by the natural key (type, category, label)
// rather than a surrogate id; labels must be unique per type within a cycle.
type BudgetItem struct {
	ID       uuid.UUID
	CycleID  uuid.UUID
	Label    string
	Type     BudgetItemType
	Category ExpenseCategory
	Amount   *decimal.Decimal // nil until the amount is pledged ("input pending")
	// IsSettled means paid for expense items, received for income items.
	// Set via a settle action, reversible via undo before cycle close.
	IsSettled bool
	SettledAt *time.Time
	DueDay    *int // day of month 1-31

	// Debt fields, present only for loan and credit-card categories.
	PrincipalBalance *decimal.Decimal
	InterestRate     *decimal.Decimal
	MaturityDate     *time.Time
	SpendingLimit    *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudgetItem creates a new BudgetItem entity for a cycle.
func NewBudgetItem(
	cycleID uuid.UUID,
	label string,
	itemType BudgetItemType,
	category ExpenseCategory,
	amount *decimal.Decimal,
	dueDay *int,
) *BudgetItem {
	now := time.Now().UTC()

	if itemType == ItemTypeIncome {
		category = CategoryOther
	} else {
		category = NormalizeCategory(category)
	}

	return &BudgetItem{
		ID:        uuid.New(),
		CycleID:   cycleID,
		Label:     label,
		Type:      itemType,
		Category:  category,
		Amount:    amount,
		DueDay:    dueDay,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ItemKey is the composite natural key of a budget item within one cycle.
type ItemKey struct {
	Type     BudgetItemType
	Category ExpenseCategory
	Label    string
}

// Key returns the natural key of the item.
func (i *BudgetItem) Key() ItemKey {
	return ItemKey{Type: i.Type, Category: i.Category, Label: i.Label}
}

// HasAmount reports whether the item has a pledged amount.
func (i *BudgetItem) HasAmount() bool {
	return i.Amount != nil
}

// AmountOrZero returns the pledged amount, or zero when the amount is unset.
func (i *BudgetItem) AmountOrZero() decimal.Decimal {
	if i.Amount == nil {
		return decimal.Zero
	}
	return *i.Amount
}

// Settle marks the item as paid (expense) or received (income).
func (i *BudgetItem) Settle() {
	now := time.Now().UTC()
	i.IsSettled = true
	i.SettledAt = &now
	i.UpdatedAt = now
}

// UndoSettle reverses a settle action before the cycle closes.
func (i *BudgetItem) UndoSettle() {
	i.IsSettled = false
	i.SettledAt = nil
	i.UpdatedAt = time.Now().UTC()
}
