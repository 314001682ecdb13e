// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/check2check/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name          string           `gorm:"type:varchar(150);not null;index"`
	GoalType      string           `gorm:"type:varchar(20);not null"`
	Strategy      string           `gorm:"type:varchar(20);not null"`
	TargetAmount  decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	InterestRate  *decimal.Decimal `gorm:"type:decimal(6,3)"`
	Status        string           `gorm:"type:varchar(20);not null;index"`
	CompletedAt   *time.Time       `gorm:"type:timestamptz"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
	DeletedAt     gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		GoalType:      entity.GoalType(m.GoalType),
		Strategy:      entity.PayoffStrategy(m.Strategy),
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		InterestRate:  m.InterestRate,
		Status:        entity.GoalStatus(m.Status),
		CompletedAt:   m.CompletedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	var deletedAt gorm.DeletedAt
	if goal.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *goal.DeletedAt, Valid: true}
	}

	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		GoalType:      string(goal.GoalType),
		Strategy:      string(goal.Strategy),
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		InterestRate:  goal.InterestRate,
		Status:        string(goal.Status),
		CompletedAt:   goal.CompletedAt,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
