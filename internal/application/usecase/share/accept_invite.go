package share

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// AcceptInviteInput represents the input for redeeming a share invite.
type AcceptInviteInput struct {
	MemberID uuid.UUID
	Token    string
}

// AcceptInviteOutput represents the output of redeeming a share invite.
type AcceptInviteOutput struct {
	Share *entity.BudgetShare
}

// AcceptInviteUseCase handles redeeming an invite token and linking the
// member to the owner's budget.
type AcceptInviteUseCase struct {
	userRepo  adapter.UserRepository
	shareRepo adapter.ShareRepository
}

// NewAcceptInviteUseCase creates a new AcceptInviteUseCase instance.
func NewAcceptInviteUseCase(userRepo adapter.UserRepository, shareRepo adapter.ShareRepository) *AcceptInviteUseCase {
	return &AcceptInviteUseCase{
		userRepo:  userRepo,
		shareRepo: shareRepo,
	}
}

// Execute redeems the invite. The redeeming account's email must match
// the invited address.
func (uc *AcceptInviteUseCase) Execute(ctx context.Context, input AcceptInviteInput) (*AcceptInviteOutput, error) {
	invite, err := uc.shareRepo.FindInviteByToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if !invite.IsRedeemable(time.Now().UTC()) {
		if invite.Status == entity.InviteStatusAccepted {
			return nil, domainerror.NewShareError(
				domainerror.ErrCodeInviteAlreadyAccepted,
				"invite has already been accepted",
				domainerror.ErrInviteAlreadyAccepted,
			)
		}
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeInviteExpired,
			"invite has expired",
			domainerror.ErrInviteExpired,
		)
	}

	member, err := uc.userRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(member.Email, invite.Email) {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeInviteNotFound,
			"invite was issued to a different email",
			domainerror.ErrInviteNotFound,
		)
	}

	existing, err := uc.shareRepo.FindShare(ctx, invite.OwnerID, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeAlreadyMember,
			"already a member of this budget",
			domainerror.ErrAlreadyMember,
		)
	}

	newShare := entity.NewBudgetShare(invite.OwnerID, member.ID)
	if err := uc.shareRepo.CreateShare(ctx, newShare); err != nil {
		return nil, fmt.Errorf("failed to create share: %w", err)
	}

	invite.Status = entity.InviteStatusAccepted
	if err := uc.shareRepo.UpdateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to update invite: %w", err)
	}

	return &AcceptInviteOutput{Share: newShare}, nil
}
