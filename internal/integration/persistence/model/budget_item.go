// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
)

// BudgetItemModel represents the budget_items table in the database.
// Labels are unique per type within a cycle; the composite index backs
// the natural-key lookups.
type BudgetItemModel struct {
	ID       uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CycleID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_items_cycle_type_label,unique"`
	Type     string           `gorm:"type:varchar(10);not null;index:idx_items_cycle_type_label,unique"`
	Label    string           `gorm:"type:varchar(100);not null;index:idx_items_cycle_type_label,unique"`
	Category string           `gorm:"type:varchar(20);not null"`
	Amount   *decimal.Decimal `gorm:"type:decimal(15,2)"` // NULL while input pending
	DueDay   *int             `gorm:"type:integer"`

	IsSettled bool       `gorm:"not null;default:false"`
	SettledAt *time.Time `gorm:"type:timestamptz"`

	// Debt columns, populated for loan and credit-card categories only.
	PrincipalBalance *decimal.Decimal `gorm:"type:decimal(15,2)"`
	InterestRate     *decimal.Decimal `gorm:"type:decimal(6,3)"`
	MaturityDate     *time.Time       `gorm:"type:date"`
	SpendingLimit    *decimal.Decimal `gorm:"type:decimal(15,2)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetItemModel.
func (BudgetItemModel) TableName() string {
	return "budget_items"
}

// ToEntity converts a BudgetItemModel to a domain BudgetItem entity.
func (m *BudgetItemModel) ToEntity() *entity.BudgetItem {
	return &entity.BudgetItem{
		ID:               m.ID,
		CycleID:          m.CycleID,
		Label:            m.Label,
		Type:             entity.BudgetItemType(m.Type),
		Category:         entity.ExpenseCategory(m.Category),
		Amount:           m.Amount,
		IsSettled:        m.IsSettled,
		SettledAt:        m.SettledAt,
		DueDay:           m.DueDay,
		PrincipalBalance: m.PrincipalBalance,
		InterestRate:     m.InterestRate,
		MaturityDate:     m.MaturityDate,
		SpendingLimit:    m.SpendingLimit,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// BudgetItemFromEntity creates a BudgetItemModel from a domain BudgetItem entity.
func BudgetItemFromEntity(item *entity.BudgetItem) *BudgetItemModel {
	return &BudgetItemModel{
		ID:               item.ID,
		CycleID:          item.CycleID,
		Type:             string(item.Type),
		Label:            item.Label,
		Category:         string(item.Category),
		Amount:           item.Amount,
		DueDay:           item.DueDay,
		IsSettled:        item.IsSettled,
		SettledAt:        item.SettledAt,
		PrincipalBalance: item.PrincipalBalance,
		InterestRate:     item.InterestRate,
		MaturityDate:     item.MaturityDate,
		SpendingLimit:    item.SpendingLimit,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
