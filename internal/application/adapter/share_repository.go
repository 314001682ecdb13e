// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/domain/entity"
)

// ShareRepository defines the interface for budget sharing persistence:
// invites, member links, and pending action requests.
type ShareRepository interface {
	// CreateInvite stores a pending invite.
	CreateInvite(ctx context.Context, invite *entity.ShareInvite) error

	// FindInviteByToken retrieves an invite by its redemption token.
	FindInviteByToken(ctx context.Context, token string) (*entity.ShareInvite, error)

	// UpdateInvite saves changes to an invite.
	UpdateInvite(ctx context.Context, invite *entity.ShareInvite) error

	// CreateShare links a member to an owner's budget.
	CreateShare(ctx context.Context, share *entity.BudgetShare) error

	// FindShare retrieves the member link for an owner/member pair.
	// Returns nil without error when absent.
	FindShare(ctx context.Context, ownerID, memberID uuid.UUID) (*entity.BudgetShare, error)

	// FindSharesByOwner retrieves all member links of an owner's budget.
	FindSharesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BudgetShare, error)

	// FindSharesByMember retrieves the budgets a user is a member of.
	FindSharesByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.BudgetShare, error)

	// CreateActionRequest stores a pending collaborative-edit request.
	CreateActionRequest(ctx context.Context, request *entity.ActionRequest) error

	// FindActionRequestByID retrieves an action request by its ID.
	FindActionRequestByID(ctx context.Context, id uuid.UUID) (*entity.ActionRequest, error)

	// FindPendingActionRequests retrieves a cycle's pending requests, oldest first.
	FindPendingActionRequests(ctx context.Context, cycleID uuid.UUID) ([]*entity.ActionRequest, error)

	// UpdateActionRequest saves the review outcome of a request.
	UpdateActionRequest(ctx context.Context, request *entity.ActionRequest) error
}
