package share

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepository) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeShareRepository struct {
	invites  map[string]*entity.ShareInvite
	shares   []*entity.BudgetShare
	requests map[uuid.UUID]*entity.ActionRequest
}

func newFakeShareRepository() *fakeShareRepository {
	return &fakeShareRepository{
		invites:  make(map[string]*entity.ShareInvite),
		requests: make(map[uuid.UUID]*entity.ActionRequest),
	}
}

func (r *fakeShareRepository) CreateInvite(_ context.Context, invite *entity.ShareInvite) error {
	r.invites[invite.Token] = invite
	return nil
}

func (r *fakeShareRepository) FindInviteByToken(_ context.Context, token string) (*entity.ShareInvite, error) {
	invite, ok := r.invites[token]
	if !ok {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeInviteNotFound,
			"invite not found",
			domainerror.ErrInviteNotFound,
		)
	}
	return invite, nil
}

func (r *fakeShareRepository) UpdateInvite(_ context.Context, invite *entity.ShareInvite) error {
	r.invites[invite.Token] = invite
	return nil
}

func (r *fakeShareRepository) CreateShare(_ context.Context, share *entity.BudgetShare) error {
	r.shares = append(r.shares, share)
	return nil
}

func (r *fakeShareRepository) FindShare(_ context.Context, ownerID, memberID uuid.UUID) (*entity.BudgetShare, error) {
	for _, share := range r.shares {
		if share.OwnerID == ownerID && share.MemberID == memberID {
			return share, nil
		}
	}
	return nil, nil
}

func (r *fakeShareRepository) FindSharesByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.BudgetShare, error) {
	var out []*entity.BudgetShare
	for _, share := range r.shares {
		if share.OwnerID == ownerID {
			out = append(out, share)
		}
	}
	return out, nil
}

func (r *fakeShareRepository) FindSharesByMember(_ context.Context, memberID uuid.UUID) ([]*entity.BudgetShare, error) {
	var out []*entity.BudgetShare
	for _, share := range r.shares {
		if share.MemberID == memberID {
			out = append(out, share)
		}
	}
	return out, nil
}

func (r *fakeShareRepository) CreateActionRequest(_ context.Context, request *entity.ActionRequest) error {
	r.requests[request.ID] = request
	return nil
}

func (r *fakeShareRepository) FindActionRequestByID(_ context.Context, id uuid.UUID) (*entity.ActionRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeActionRequestNotFound,
			"action request not found",
			domainerror.ErrActionRequestNotFound,
		)
	}
	return request, nil
}

func (r *fakeShareRepository) FindPendingActionRequests(_ context.Context, cycleID uuid.UUID) ([]*entity.ActionRequest, error) {
	var out []*entity.ActionRequest
	for _, request := range r.requests {
		if request.CycleID == cycleID && request.Status == entity.ActionRequestPending {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeShareRepository) UpdateActionRequest(_ context.Context, request *entity.ActionRequest) error {
	r.requests[request.ID] = request
	return nil
}

type fakeEmailService struct {
	invitations []adapter.QueueBudgetInvitationInput
}

func (s *fakeEmailService) QueuePasswordResetEmail(_ context.Context, _ adapter.QueuePasswordResetInput) error {
	return nil
}

func (s *fakeEmailService) QueueBudgetInvitationEmail(_ context.Context, input adapter.QueueBudgetInvitationInput) error {
	s.invitations = append(s.invitations, input)
	return nil
}

func TestInviteMemberUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := entity.NewUser("owner@example.com", "Dana", "hash")

	t.Run("should create an invite and queue the email", func(t *testing.T) {
		userRepo := newFakeUserRepository(owner)
		shareRepo := newFakeShareRepository()
		emailService := &fakeEmailService{}

		uc := NewInviteMemberUseCase(userRepo, shareRepo, emailService, "https://app.example.com")
		output, err := uc.Execute(ctx, InviteMemberInput{OwnerID: owner.ID, Email: "Partner@Example.com"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		invite := output.Invite
		if invite.Email != "partner@example.com" {
			t.Errorf("expected normalized email, got %q", invite.Email)
		}
		if invite.Status != entity.InviteStatusPending {
			t.Errorf("expected pending invite, got %s", invite.Status)
		}
		if len(invite.Token) != 64 {
			t.Errorf("expected 64-char token, got %d chars", len(invite.Token))
		}
		if len(emailService.invitations) != 1 {
			t.Fatalf("expected 1 queued email, got %d", len(emailService.invitations))
		}
		if emailService.invitations[0].InviterName != "Dana" {
			t.Errorf("expected inviter name Dana, got %q", emailService.invitations[0].InviterName)
		}
	})

	t.Run("should reject self invites", func(t *testing.T) {
		uc := NewInviteMemberUseCase(newFakeUserRepository(owner), newFakeShareRepository(), &fakeEmailService{}, "https://app.example.com")
		_, err := uc.Execute(ctx, InviteMemberInput{OwnerID: owner.ID, Email: "OWNER@example.com"})
		if !errors.Is(err, domainerror.ErrSelfInvite) {
			t.Errorf("expected ErrSelfInvite, got %v", err)
		}
	})

	t.Run("should reject inviting an existing member", func(t *testing.T) {
		member := entity.NewUser("partner@example.com", "Sam", "hash")
		userRepo := newFakeUserRepository(owner, member)
		shareRepo := newFakeShareRepository()
		shareRepo.shares = append(shareRepo.shares, entity.NewBudgetShare(owner.ID, member.ID))

		uc := NewInviteMemberUseCase(userRepo, shareRepo, &fakeEmailService{}, "https://app.example.com")
		_, err := uc.Execute(ctx, InviteMemberInput{OwnerID: owner.ID, Email: member.Email})
		if !errors.Is(err, domainerror.ErrAlreadyMember) {
			t.Errorf("expected ErrAlreadyMember, got %v", err)
		}
	})
}

func TestAcceptInviteUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	owner := entity.NewUser("owner@example.com", "Dana", "hash")
	member := entity.NewUser("partner@example.com", "Sam", "hash")

	t.Run("should link the member and consume the invite", func(t *testing.T) {
		userRepo := newFakeUserRepository(owner, member)
		shareRepo := newFakeShareRepository()
		invite := entity.NewShareInvite(owner.ID, member.Email, "tok-accept")
		shareRepo.invites[invite.Token] = invite

		uc := NewAcceptInviteUseCase(userRepo, shareRepo)
		output, err := uc.Execute(ctx, AcceptInviteInput{MemberID: member.ID, Token: invite.Token})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Share.OwnerID != owner.ID || output.Share.MemberID != member.ID {
			t.Error("expected share to link owner and member")
		}
		if invite.Status != entity.InviteStatusAccepted {
			t.Errorf("expected invite to be accepted, got %s", invite.Status)
		}
	})

	t.Run("should reject a mismatched email", func(t *testing.T) {
		stranger := entity.NewUser("stranger@example.com", "Alex", "hash")
		userRepo := newFakeUserRepository(owner, member, stranger)
		shareRepo := newFakeShareRepository()
		invite := entity.NewShareInvite(owner.ID, member.Email, "tok-mismatch")
		shareRepo.invites[invite.Token] = invite

		uc := NewAcceptInviteUseCase(userRepo, shareRepo)
		_, err := uc.Execute(ctx, AcceptInviteInput{MemberID: stranger.ID, Token: invite.Token})
		if !errors.Is(err, domainerror.ErrInviteNotFound) {
			t.Errorf("expected ErrInviteNotFound, got %v", err)
		}
	})

	t.Run("should reject an expired invite", func(t *testing.T) {
		userRepo := newFakeUserRepository(owner, member)
		shareRepo := newFakeShareRepository()
		invite := entity.NewShareInvite(owner.ID, member.Email, "tok-expired")
		invite.ExpiresAt = time.Now().UTC().Add(-time.Hour)
		shareRepo.invites[invite.Token] = invite

		uc := NewAcceptInviteUseCase(userRepo, shareRepo)
		_, err := uc.Execute(ctx, AcceptInviteInput{MemberID: member.ID, Token: invite.Token})
		if !errors.Is(err, domainerror.ErrInviteExpired) {
			t.Errorf("expected ErrInviteExpired, got %v", err)
		}
	})

	t.Run("should reject double redemption", func(t *testing.T) {
		userRepo := newFakeUserRepository(owner, member)
		shareRepo := newFakeShareRepository()
		invite := entity.NewShareInvite(owner.ID, member.Email, "tok-twice")
		shareRepo.invites[invite.Token] = invite

		uc := NewAcceptInviteUseCase(userRepo, shareRepo)
		if _, err := uc.Execute(ctx, AcceptInviteInput{MemberID: member.ID, Token: invite.Token}); err != nil {
			t.Fatalf("first redemption failed: %v", err)
		}
		_, err := uc.Execute(ctx, AcceptInviteInput{MemberID: member.ID, Token: invite.Token})
		if !errors.Is(err, domainerror.ErrInviteAlreadyAccepted) {
			t.Errorf("expected ErrInviteAlreadyAccepted, got %v", err)
		}
	})
}
