// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
)

// BudgetCycleModel represents the budget_cycles table in the database.
// The final summary columns stay NULL while the cycle is active and are
// written exactly once at close.
type BudgetCycleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Status    string    `gorm:"type:varchar(20);not null;index"`

	PlannedIncome   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ActualIncome    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PlannedExpenses *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ActualExpenses  *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ActualSurplus   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	ClosedAt        *time.Time       `gorm:"type:timestamptz"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Items []BudgetItemModel `gorm:"foreignKey:CycleID;references:ID"`
}

// TableName returns the table name for the BudgetCycleModel.
func (BudgetCycleModel) TableName() string {
	return "budget_cycles"
}

// ToEntity converts a BudgetCycleModel to a domain BudgetCycle entity,
// splitting preloaded items into income and expense lists.
func (m *BudgetCycleModel) ToEntity() *entity.BudgetCycle {
	c := &entity.BudgetCycle{
		ID:        m.ID,
		UserID:    m.UserID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Status:    entity.CycleStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.ClosedAt != nil {
		c.FinalSummary = &entity.FinalSummary{
			PlannedIncome:   derefOrZero(m.PlannedIncome),
			ActualIncome:    derefOrZero(m.ActualIncome),
			PlannedExpenses: derefOrZero(m.PlannedExpenses),
			ActualExpenses:  derefOrZero(m.ActualExpenses),
			ActualSurplus:   derefOrZero(m.ActualSurplus),
			ClosedAt:        *m.ClosedAt,
		}
	}

	for i := range m.Items {
		item := m.Items[i].ToEntity()
		if item.Type == entity.ItemTypeIncome {
			c.IncomeItems = append(c.IncomeItems, item)
		} else {
			c.ExpenseItems = append(c.ExpenseItems, item)
		}
	}

	return c
}

// BudgetCycleFromEntity creates a BudgetCycleModel from a domain BudgetCycle entity.
// Items are persisted separately and deliberately not mapped here.
func BudgetCycleFromEntity(c *entity.BudgetCycle) *BudgetCycleModel {
	m := &BudgetCycleModel{
		ID:        c.ID,
		UserID:    c.UserID,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if s := c.FinalSummary; s != nil {
		m.PlannedIncome = decimalPtr(s.PlannedIncome)
		m.ActualIncome = decimalPtr(s.ActualIncome)
		m.PlannedExpenses = decimalPtr(s.PlannedExpenses)
		m.ActualExpenses = decimalPtr(s.ActualExpenses)
		m.ActualSurplus = decimalPtr(s.ActualSurplus)
		closedAt := s.ClosedAt
		m.ClosedAt = &closedAt
	}

	return m
}

func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
