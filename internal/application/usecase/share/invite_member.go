// Package share contains budget sharing use cases.
package share

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// InviteMemberInput represents the input for inviting a budget member.
type InviteMemberInput struct {
	OwnerID uuid.UUID
	Email   string
}

// InviteMemberOutput represents the output of inviting a budget member.
type InviteMemberOutput struct {
	Invite *entity.ShareInvite
}

// InviteMemberUseCase handles inviting another person to a shared budget.
type InviteMemberUseCase struct {
	userRepo     adapter.UserRepository
	shareRepo    adapter.ShareRepository
	emailService adapter.EmailService
	appBaseURL   string
}

// NewInviteMemberUseCase creates a new InviteMemberUseCase instance.
func NewInviteMemberUseCase(
	userRepo adapter.UserRepository,
	shareRepo adapter.ShareRepository,
	emailService adapter.EmailService,
	appBaseURL string,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		userRepo:     userRepo,
		shareRepo:    shareRepo,
		emailService: emailService,
		appBaseURL:   appBaseURL,
	}
}

// Execute creates a pending invite and queues the invitation email.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, input InviteMemberInput) (*InviteMemberOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !isValidEmailFormat(email) {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeMissingShareFields,
			"invalid invite email",
			nil,
		)
	}

	owner, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(owner.Email, email) {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeSelfInvite,
			"cannot invite yourself",
			domainerror.ErrSelfInvite,
		)
	}

	// An already-registered invitee that is already a member needs no invite.
	if invitee, err := uc.userRepo.FindByEmail(ctx, email); err == nil {
		existing, err := uc.shareRepo.FindShare(ctx, input.OwnerID, invitee.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		if existing != nil {
			return nil, domainerror.NewShareError(
				domainerror.ErrCodeAlreadyMember,
				fmt.Sprintf("%s is already a member of this budget", email),
				domainerror.ErrAlreadyMember,
			)
		}
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	invite := entity.NewShareInvite(input.OwnerID, email, token)
	if err := uc.shareRepo.CreateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to store invite: %w", err)
	}

	inviteURL := fmt.Sprintf("%s/share/accept?token=%s", uc.appBaseURL, invite.Token)
	if uc.emailService != nil {
		err = uc.emailService.QueueBudgetInvitationEmail(ctx, adapter.QueueBudgetInvitationInput{
			InviterName:  owner.Name,
			InviterEmail: owner.Email,
			InviteEmail:  email,
			InviteURL:    inviteURL,
			ExpiresIn:    "7 days",
		})
		if err != nil {
			slog.Error("Failed to queue invitation email", "error", err, "ownerID", owner.ID)
		} else {
			slog.Info("Budget invitation email queued", "ownerID", owner.ID, "inviteEmail", email)
		}
	} else {
		slog.Info("Budget invite created (email service not configured)",
			"ownerID", owner.ID,
			"inviteEmail", email,
			"inviteURL", inviteURL,
		)
	}

	return &InviteMemberOutput{Invite: invite}, nil
}

// generateInviteToken returns a 64-character hex token.
func generateInviteToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// isValidEmailFormat validates email format using a simple regex.
func isValidEmailFormat(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
