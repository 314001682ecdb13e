// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
)

// ShareInviteModel represents the share_invites table in the database.
type ShareInviteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Token     string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ShareInviteModel.
func (ShareInviteModel) TableName() string {
	return "share_invites"
}

// ToEntity converts a ShareInviteModel to a domain ShareInvite entity.
func (m *ShareInviteModel) ToEntity() *entity.ShareInvite {
	return &entity.ShareInvite{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Email:     m.Email,
		Token:     m.Token,
		Status:    entity.InviteStatus(m.Status),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// ShareInviteFromEntity creates a ShareInviteModel from a domain ShareInvite entity.
func ShareInviteFromEntity(invite *entity.ShareInvite) *ShareInviteModel {
	return &ShareInviteModel{
		ID:        invite.ID,
		OwnerID:   invite.OwnerID,
		Email:     invite.Email,
		Token:     invite.Token,
		Status:    string(invite.Status),
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}
}

// BudgetShareModel represents the budget_shares table in the database.
type BudgetShareModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_shares_owner_member,unique"`
	MemberID  uuid.UUID `gorm:"type:uuid;not null;index:idx_shares_owner_member,unique"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetShareModel.
func (BudgetShareModel) TableName() string {
	return "budget_shares"
}

// ToEntity converts a BudgetShareModel to a domain BudgetShare entity.
func (m *BudgetShareModel) ToEntity() *entity.BudgetShare {
	return &entity.BudgetShare{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		MemberID:  m.MemberID,
		Role:      entity.ShareRole(m.Role),
		CreatedAt: m.CreatedAt,
	}
}

// BudgetShareFromEntity creates a BudgetShareModel from a domain BudgetShare entity.
func BudgetShareFromEntity(share *entity.BudgetShare) *BudgetShareModel {
	return &BudgetShareModel{
		ID:        share.ID,
		OwnerID:   share.OwnerID,
		MemberID:  share.MemberID,
		Role:      string(share.Role),
		CreatedAt: share.CreatedAt,
	}
}

// ActionRequestModel represents the action_requests table in the database.
type ActionRequestModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CycleID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestedBy uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind        string     `gorm:"type:varchar(20);not null"`
	ItemType    string     `gorm:"type:varchar(10);not null"`
	ItemLabel   string     `gorm:"type:varchar(100);not null"`
	Payload     string     `gorm:"type:jsonb"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt  *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ActionRequestModel.
func (ActionRequestModel) TableName() string {
	return "action_requests"
}

// ToEntity converts an ActionRequestModel to a domain ActionRequest entity.
func (m *ActionRequestModel) ToEntity() *entity.ActionRequest {
	return &entity.ActionRequest{
		ID:          m.ID,
		CycleID:     m.CycleID,
		RequestedBy: m.RequestedBy,
		Kind:        entity.ActionRequestKind(m.Kind),
		ItemType:    entity.BudgetItemType(m.ItemType),
		ItemLabel:   m.ItemLabel,
		Payload:     m.Payload,
		Status:      entity.ActionRequestStatus(m.Status),
		ReviewedBy:  m.ReviewedBy,
		ReviewedAt:  m.ReviewedAt,
		CreatedAt:   m.CreatedAt,
	}
}

// ActionRequestFromEntity creates an ActionRequestModel from a domain ActionRequest entity.
func ActionRequestFromEntity(request *entity.ActionRequest) *ActionRequestModel {
	return &ActionRequestModel{
		ID:          request.ID,
		CycleID:     request.CycleID,
		RequestedBy: request.RequestedBy,
		Kind:        string(request.Kind),
		ItemType:    string(request.ItemType),
		ItemLabel:   request.ItemLabel,
		Payload:     request.Payload,
		Status:      string(request.Status),
		ReviewedBy:  request.ReviewedBy,
		ReviewedAt:  request.ReviewedAt,
		CreatedAt:   request.CreatedAt,
	}
}
