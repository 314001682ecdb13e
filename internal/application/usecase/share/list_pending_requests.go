package share

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
)

// ListPendingRequestsInput represents the input for listing pending edits.
type ListPendingRequestsInput struct {
	OwnerID uuid.UUID
}

// ListPendingRequestsOutput represents the output of listing pending edits.
type ListPendingRequestsOutput struct {
	Requests []*entity.ActionRequest
}

// ListPendingRequestsUseCase handles the owner's review queue for the
// active cycle.
type ListPendingRequestsUseCase struct {
	shareRepo adapter.ShareRepository
	cycleRepo adapter.CycleRepository
}

// NewListPendingRequestsUseCase creates a new ListPendingRequestsUseCase instance.
func NewListPendingRequestsUseCase(
	shareRepo adapter.ShareRepository,
	cycleRepo adapter.CycleRepository,
) *ListPendingRequestsUseCase {
	return &ListPendingRequestsUseCase{
		shareRepo: shareRepo,
		cycleRepo: cycleRepo,
	}
}

// Execute lists the pending requests against the owner's active cycle.
func (uc *ListPendingRequestsUseCase) Execute(ctx context.Context, input ListPendingRequestsInput) (*ListPendingRequestsOutput, error) {
	activeCycle, err := uc.cycleRepo.FindActiveByUser(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	requests, err := uc.shareRepo.FindPendingActionRequests(ctx, activeCycle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}

	return &ListPendingRequestsOutput{Requests: requests}, nil
}
