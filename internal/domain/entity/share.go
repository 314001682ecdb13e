// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InviteStatus represents the lifecycle state of a budget share invite.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

// inviteTTL is how long an invite remains redeemable.
const inviteTTL = 7 * 24 * time.Hour

// ShareInvite is a pending invitation for another user to join a budget.
type ShareInvite struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Email     string
	Token     string
	Status    InviteStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewShareInvite creates a pending invite addressed to the given email.
func NewShareInvite(ownerID uuid.UUID, email, token string) *ShareInvite {
	now := time.Now().UTC()

	return &ShareInvite{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Email:     email,
		Token:     token,
		Status:    InviteStatusPending,
		ExpiresAt: now.Add(inviteTTL),
		CreatedAt: now,
	}
}

// IsRedeemable reports whether the invite can still be accepted.
func (i *ShareInvite) IsRedeemable(now time.Time) bool {
	return i.Status == InviteStatusPending && now.Before(i.ExpiresAt)
}

// ShareRole represents a member's role on a shared budget.
type ShareRole string

const (
	ShareRoleOwner  ShareRole = "owner"
	ShareRoleMember ShareRole = "member"
)

// BudgetShare links a member to a budget owner's data.
type BudgetShare struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	MemberID  uuid.UUID
	Role      ShareRole
	CreatedAt time.Time
}

// NewBudgetShare creates a member link to the owner's budget.
func NewBudgetShare(ownerID, memberID uuid.UUID) *BudgetShare {
	return &BudgetShare{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		MemberID:  memberID,
		Role:      ShareRoleMember,
		CreatedAt: time.Now().UTC(),
	}
}

// ActionRequestStatus represents the review state of a collaborative edit.
type ActionRequestStatus string

const (
	ActionRequestPending  ActionRequestStatus = "pending"
	ActionRequestApproved ActionRequestStatus = "approved"
	ActionRequestRejected ActionRequestStatus = "rejected"
)

// ActionRequestKind names the edit a member is asking the owner to apply.
type ActionRequestKind string

const (
	ActionRequestAddItem    ActionRequestKind = "add_item"
	ActionRequestRemoveItem ActionRequestKind = "remove_item"
	ActionRequestEditItem   ActionRequestKind = "edit_item"
)

// ActionRequest is a pending collaborative-edit request raised by a budget
// member against the owner's active cycle. Members propose; owners review.
type ActionRequest struct {
	ID          uuid.UUID
	CycleID     uuid.UUID
	RequestedBy uuid.UUID
	Kind        ActionRequestKind
	// ItemLabel identifies the target item by its natural key within the cycle.
	ItemLabel string
	ItemType  BudgetItemType
	// Payload carries the proposed change as JSON (amount, due day, ...).
	Payload    string
	Status     ActionRequestStatus
	ReviewedBy *uuid.UUID
	ReviewedAt *time.Time
	CreatedAt  time.Time
}

// NewActionRequest creates a pending action request.
func NewActionRequest(cycleID, requestedBy uuid.UUID, kind ActionRequestKind, itemType BudgetItemType, itemLabel, payload string) *ActionRequest {
	return &ActionRequest{
		ID:          uuid.New(),
		CycleID:     cycleID,
		RequestedBy: requestedBy,
		Kind:        kind,
		ItemType:    itemType,
		ItemLabel:   itemLabel,
		Payload:     payload,
		Status:      ActionRequestPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// Review records the owner's decision. Only pending requests can be reviewed.
func (r *ActionRequest) Review(reviewer uuid.UUID, approved bool) {
	if r.Status != ActionRequestPending {
		return
	}
	now := time.Now().UTC()
	if approved {
		r.Status = ActionRequestApproved
	} else {
		r.Status = ActionRequestRejected
	}
	r.ReviewedBy = &reviewer
	r.ReviewedAt = &now
}
