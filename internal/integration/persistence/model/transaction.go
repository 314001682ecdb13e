// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/check2check/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Rows are append-only; there is no soft-delete column because reversals
// are modeled as new rows.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CycleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryName string          `gorm:"type:varchar(100);not null;index"`
	IsReversal   bool            `gorm:"not null;default:false"`
	SourceItemID *uuid.UUID      `gorm:"type:uuid;index"`
	TransactedAt time.Time       `gorm:"type:timestamptz;not null"`
	CreatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Cycle *BudgetCycleModel `gorm:"foreignKey:CycleID;references:ID"`
	User  *UserModel        `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		CycleID:      m.CycleID,
		Type:         entity.TransactionType(m.Type),
		Amount:       m.Amount,
		CategoryName: m.CategoryName,
		IsReversal:   m.IsReversal,
		SourceItemID: m.SourceItemID,
		TransactedAt: m.TransactedAt,
		CreatedAt:    m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		CycleID:      transaction.CycleID,
		Type:         string(transaction.Type),
		Amount:       transaction.Amount,
		CategoryName: transaction.CategoryName,
		IsReversal:   transaction.IsReversal,
		SourceItemID: transaction.SourceItemID,
		TransactedAt: transaction.TransactedAt,
		CreatedAt:    transaction.CreatedAt,
	}
}
