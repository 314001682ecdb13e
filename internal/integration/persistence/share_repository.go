// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
	"github.com/check2check/backend/internal/integration/persistence/model"
)

// shareRepository implements the adapter.ShareRepository interface.
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new budget sharing repository instance.
func NewShareRepository(db *gorm.DB) adapter.ShareRepository {
	return &shareRepository{
		db: db,
	}
}

// CreateInvite stores a pending invite.
func (r *shareRepository) CreateInvite(ctx context.Context, invite *entity.ShareInvite) error {
	inviteModel := model.ShareInviteFromEntity(invite)
	result := r.db.WithContext(ctx).Create(inviteModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindInviteByToken retrieves an invite by its redemption token.
func (r *shareRepository) FindInviteByToken(ctx context.Context, token string) (*entity.ShareInvite, error) {
	var inviteModel model.ShareInviteModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewShareError(
				domainerror.ErrCodeInviteNotFound,
				"invite not found",
				domainerror.ErrInviteNotFound,
			)
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// UpdateInvite saves changes to an invite.
func (r *shareRepository) UpdateInvite(ctx context.Context, invite *entity.ShareInvite) error {
	inviteModel := model.ShareInviteFromEntity(invite)
	result := r.db.WithContext(ctx).Save(inviteModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateShare links a member to an owner's budget.
func (r *shareRepository) CreateShare(ctx context.Context, share *entity.BudgetShare) error {
	shareModel := model.BudgetShareFromEntity(share)
	result := r.db.WithContext(ctx).Create(shareModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindShare retrieves the member link for an owner/member pair.
// Returns nil without error when absent.
func (r *shareRepository) FindShare(ctx context.Context, ownerID, memberID uuid.UUID) (*entity.BudgetShare, error) {
	var shareModel model.BudgetShareModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND member_id = ?", ownerID, memberID).
		First(&shareModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return shareModel.ToEntity(), nil
}

// FindSharesByOwner retrieves all member links of an owner's budget.
func (r *shareRepository) FindSharesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BudgetShare, error) {
	var shareModels []model.BudgetShareModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&shareModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toShareEntities(shareModels), nil
}

// FindSharesByMember retrieves the budgets a user is a member of.
func (r *shareRepository) FindSharesByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.BudgetShare, error) {
	var shareModels []model.BudgetShareModel
	result := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at ASC").
		Find(&shareModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toShareEntities(shareModels), nil
}

// CreateActionRequest stores a pending collaborative-edit request.
func (r *shareRepository) CreateActionRequest(ctx context.Context, request *entity.ActionRequest) error {
	requestModel := model.ActionRequestFromEntity(request)
	result := r.db.WithContext(ctx).Create(requestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindActionRequestByID retrieves an action request by its ID.
func (r *shareRepository) FindActionRequestByID(ctx context.Context, id uuid.UUID) (*entity.ActionRequest, error) {
	var requestModel model.ActionRequestModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&requestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewShareError(
				domainerror.ErrCodeActionRequestNotFound,
				"action request not found",
				domainerror.ErrActionRequestNotFound,
			)
		}
		return nil, result.Error
	}
	return requestModel.ToEntity(), nil
}

// FindPendingActionRequests retrieves a cycle's pending requests, oldest first.
func (r *shareRepository) FindPendingActionRequests(ctx context.Context, cycleID uuid.UUID) ([]*entity.ActionRequest, error) {
	var requestModels []model.ActionRequestModel
	result := r.db.WithContext(ctx).
		Where("cycle_id = ? AND status = ?", cycleID, string(entity.ActionRequestPending)).
		Order("created_at ASC").
		Find(&requestModels)
	if result.Error != nil {
		return nil, result.Error
	}

	requests := make([]*entity.ActionRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = requestModels[i].ToEntity()
	}
	return requests, nil
}

// UpdateActionRequest saves the review outcome of a request.
func (r *shareRepository) UpdateActionRequest(ctx context.Context, request *entity.ActionRequest) error {
	requestModel := model.ActionRequestFromEntity(request)
	result := r.db.WithContext(ctx).Save(requestModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toShareEntities(shareModels []model.BudgetShareModel) []*entity.BudgetShare {
	shares := make([]*entity.BudgetShare, len(shareModels))
	for i := range shareModels {
		shares[i] = shareModels[i].ToEntity()
	}
	return shares
}
