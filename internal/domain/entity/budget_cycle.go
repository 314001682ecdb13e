// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CycleStatus represents the lifecycle state of a budget cycle.
type CycleStatus string

const (
	CycleStatusActive    CycleStatus = "active"
	CycleStatusCompleted CycleStatus = "completed"
)

// FinalSummary is the frozen close-time snapshot of a cycle's figures.
// It is computed exactly once when the cycle closes and never recomputed.
type FinalSummary struct {
	PlannedIncome   decimal.Decimal
	ActualIncome    decimal.Decimal
	PlannedExpenses decimal.Decimal
	ActualExpenses  decimal.Decimal
	ActualSurplus   decimal.Decimal
	ClosedAt        time.Time
}

// BudgetCycle is the aggregate root for one budgeting period.
// Exactly one active cycle exists per user at a time.
type BudgetCycle struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time // inclusive
	Status    CycleStatus

	// IncomeItems and ExpenseItems hold the plan when loaded with items.
	IncomeItems  []*BudgetItem
	ExpenseItems []*BudgetItem

	// FinalSummary is nil while the cycle is active.
	FinalSummary *FinalSummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudgetCycle creates a new active BudgetCycle entity.
func NewBudgetCycle(userID uuid.UUID, startDate, endDate time.Time) *BudgetCycle {
	now := time.Now().UTC()

	return &BudgetCycle{
		ID:        uuid.New(),
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    CycleStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the cycle is still open.
func (c *BudgetCycle) IsActive() bool {
	return c.Status == CycleStatusActive
}

// CanClose reports whether the cycle is eligible to close: it must be
// active and its end date must be in the past.
func (c *BudgetCycle) CanClose(now time.Time) bool {
	return c.IsActive() && c.EndDate.Before(now)
}

// Close transitions the cycle to completed and freezes the final summary.
// Calling Close on an already-completed cycle is a no-op.
func (c *BudgetCycle) Close(summary FinalSummary) {
	if !c.IsActive() {
		return
	}
	c.Status = CycleStatusCompleted
	c.FinalSummary = &summary
	c.UpdatedAt = time.Now().UTC()
}

// FindItem looks up an item by its natural key. Returns nil when absent.
func (c *BudgetCycle) FindItem(key ItemKey) *BudgetItem {
	for _, item := range c.IncomeItems {
		if item.Key() == key {
			return item
		}
	}
	for _, item := range c.ExpenseItems {
		if item.Key() == key {
			return item
		}
	}
	return nil
}

// HasItemWithLabel reports whether an item with the given type and label
// already exists in the cycle. Labels are unique per type within a cycle.
func (c *BudgetCycle) HasItemWithLabel(itemType BudgetItemType, label string) bool {
	items := c.ExpenseItems
	if itemType == ItemTypeIncome {
		items = c.IncomeItems
	}
	for _, item := range items {
		if item.Type == itemType && item.Label == label {
			return true
		}
	}
	return false
}
