package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// SubmitActionRequestInput represents the input for proposing an edit.
type SubmitActionRequestInput struct {
	MemberID  uuid.UUID
	OwnerID   uuid.UUID
	Kind      entity.ActionRequestKind
	ItemType  entity.BudgetItemType
	ItemLabel string
	// Payload carries the proposed change as JSON.
	Payload string
}

// SubmitActionRequestOutput represents the output of proposing an edit.
type SubmitActionRequestOutput struct {
	Request *entity.ActionRequest
}

// SubmitActionRequestUseCase handles a member proposing a plan edit on
// the owner's active cycle. Members propose; only owners apply.
type SubmitActionRequestUseCase struct {
	shareRepo adapter.ShareRepository
	cycleRepo adapter.CycleRepository
}

// NewSubmitActionRequestUseCase creates a new SubmitActionRequestUseCase instance.
func NewSubmitActionRequestUseCase(
	shareRepo adapter.ShareRepository,
	cycleRepo adapter.CycleRepository,
) *SubmitActionRequestUseCase {
	return &SubmitActionRequestUseCase{
		shareRepo: shareRepo,
		cycleRepo: cycleRepo,
	}
}

// Execute verifies membership and stores the pending request against the
// owner's active cycle.
func (uc *SubmitActionRequestUseCase) Execute(ctx context.Context, input SubmitActionRequestInput) (*SubmitActionRequestOutput, error) {
	switch input.Kind {
	case entity.ActionRequestAddItem, entity.ActionRequestRemoveItem, entity.ActionRequestEditItem:
	default:
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeMissingShareFields,
			"kind must be 'add_item', 'remove_item', or 'edit_item'",
			nil,
		)
	}
	if input.ItemLabel == "" {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeMissingShareFields,
			"item label is required",
			nil,
		)
	}

	membership, err := uc.shareRepo.FindShare(ctx, input.OwnerID, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if membership == nil {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeNotBudgetMember,
			"not a member of this budget",
			domainerror.ErrNotBudgetMember,
		)
	}

	activeCycle, err := uc.cycleRepo.FindActiveByUser(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	request := entity.NewActionRequest(
		activeCycle.ID,
		input.MemberID,
		input.Kind,
		input.ItemType,
		input.ItemLabel,
		input.Payload,
	)
	if err := uc.shareRepo.CreateActionRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to store action request: %w", err)
	}

	return &SubmitActionRequestOutput{Request: request}, nil
}
