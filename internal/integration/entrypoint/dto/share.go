package dto

import (
	"time"

	"github.com/check2check/backend/internal/domain/entity"
)

// InviteMemberRequest represents the request body for inviting a partner
// to a shared budget.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AcceptInviteRequest represents the request body for redeeming an invite.
type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// SubmitActionRequestRequest represents the request body for proposing a
// budget edit as a non-owner member.
type SubmitActionRequestRequest struct {
	OwnerID   string `json:"owner_id" binding:"required"`
	Kind      string `json:"kind" binding:"required,oneof=add_item remove_item edit_item"`
	ItemType  string `json:"item_type" binding:"required,oneof=income recurring variable"`
	ItemLabel string `json:"item_label" binding:"required,min=1,max=100"`
	Payload   string `json:"payload,omitempty"`
}

// ReviewActionRequestRequest represents the request body for approving or
// rejecting a pending edit proposal.
type ReviewActionRequestRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// InviteResponse represents a share invite in API responses. The token is
// delivered to the invitee by email, never echoed here.
type InviteResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ShareResponse represents a budget membership in API responses.
type ShareResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	MemberID  string    `json:"member_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ActionRequestResponse represents a proposed budget edit in API responses.
type ActionRequestResponse struct {
	ID          string     `json:"id"`
	CycleID     string     `json:"cycle_id"`
	RequestedBy string     `json:"requested_by"`
	Kind        string     `json:"kind"`
	ItemType    string     `json:"item_type"`
	ItemLabel   string     `json:"item_label"`
	Payload     string     `json:"payload,omitempty"`
	Status      string     `json:"status"`
	ReviewedBy  *string    `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ActionRequestListResponse represents the response for listing pending
// edit proposals.
type ActionRequestListResponse struct {
	Requests []ActionRequestResponse `json:"requests"`
}

// ToInviteResponse converts a ShareInvite entity to its response DTO.
func ToInviteResponse(invite *entity.ShareInvite) InviteResponse {
	return InviteResponse{
		ID:        invite.ID.String(),
		Email:     invite.Email,
		Status:    string(invite.Status),
		ExpiresAt: invite.ExpiresAt,
		CreatedAt: invite.CreatedAt,
	}
}

// ToShareResponse converts a BudgetShare entity to its response DTO.
func ToShareResponse(share *entity.BudgetShare) ShareResponse {
	return ShareResponse{
		ID:        share.ID.String(),
		OwnerID:   share.OwnerID.String(),
		MemberID:  share.MemberID.String(),
		Role:      string(share.Role),
		CreatedAt: share.CreatedAt,
	}
}

// ToActionRequestResponse converts an ActionRequest entity to its response DTO.
func ToActionRequestResponse(request *entity.ActionRequest) ActionRequestResponse {
	response := ActionRequestResponse{
		ID:          request.ID.String(),
		CycleID:     request.CycleID.String(),
		RequestedBy: request.RequestedBy.String(),
		Kind:        string(request.Kind),
		ItemType:    string(request.ItemType),
		ItemLabel:   request.ItemLabel,
		Payload:     request.Payload,
		Status:      string(request.Status),
		ReviewedAt:  request.ReviewedAt,
		CreatedAt:   request.CreatedAt,
	}

	if request.ReviewedBy != nil {
		reviewer := request.ReviewedBy.String()
		response.ReviewedBy = &reviewer
	}

	return response
}

// ToActionRequestListResponse converts pending requests to a list response.
func ToActionRequestListResponse(requests []*entity.ActionRequest) ActionRequestListResponse {
	responses := make([]ActionRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = ToActionRequestResponse(request)
	}
	return ActionRequestListResponse{Requests: responses}
}
