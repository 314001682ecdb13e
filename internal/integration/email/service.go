// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/check2check/backend/internal/application/adapter"
	"github.com/check2check/backend/internal/domain/entity"
	domainerror "github.com/check2check/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Check2Check"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueBudgetInvitationEmail queues a budget share invitation email.
func (s *Service) QueueBudgetInvitationEmail(ctx context.Context, input adapter.QueueBudgetInvitationInput) error {
	subject := fmt.Sprintf("%s invited you to share a budget - Check2Check", input.InviterName)

	templateData := map[string]interface{}{
		"inviter_name":  input.InviterName,
		"inviter_email": input.InviterEmail,
		"invite_url":    input.InviteURL,
		"expires_in":    input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetInvitation,
		input.InviteEmail,
		"", // Recipient name unknown for invitations
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget invitation email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
