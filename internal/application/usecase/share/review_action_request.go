package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// ReviewActionRequestInput represents the input for reviewing a request.
type ReviewActionRequestInput struct {
	OwnerID   uuid.UUID
	RequestID uuid.UUID
	Approve   bool
}

// ReviewActionRequestOutput represents the output of reviewing a request.
type ReviewActionRequestOutput struct {
	Request *entity.ActionRequest
}

// ReviewActionRequestUseCase handles the owner's decision on a member's
// proposed edit. The decision is recorded here; approved edits are then
// applied through the regular item operations.
type ReviewActionRequestUseCase struct {
	shareRepo adapter.ShareRepository
	cycleRepo adapter.CycleRepository
}

// NewReviewActionRequestUseCase creates a new ReviewActionRequestUseCase instance.
func NewReviewActionRequestUseCase(
	shareRepo adapter.ShareRepository,
	cycleRepo adapter.CycleRepository,
) *ReviewActionRequestUseCase {
	return &ReviewActionRequestUseCase{
		shareRepo: shareRepo,
		cycleRepo: cycleRepo,
	}
}

// Execute records the approve/reject decision on a pending request.
func (uc *ReviewActionRequestUseCase) Execute(ctx context.Context, input ReviewActionRequestInput) (*ReviewActionRequestOutput, error) {
	request, err := uc.shareRepo.FindActionRequestByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	// Only the owner of the cycle the request targets may review it.
	targetCycle, err := uc.cycleRepo.FindByID(ctx, request.CycleID)
	if err != nil {
		return nil, err
	}
	if targetCycle.UserID != input.OwnerID {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeNotBudgetOwner,
			"only the budget owner can review requests",
			domainerror.ErrNotBudgetOwner,
		)
	}

	if request.Status != entity.ActionRequestPending {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeActionRequestReviewed,
			"request has already been reviewed",
			domainerror.ErrActionRequestReviewed,
		)
	}

	request.Review(input.OwnerID, input.Approve)
	if err := uc.shareRepo.UpdateActionRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update action request: %w", err)
	}

	return &ReviewActionRequestOutput{Request: request}, nil
}
