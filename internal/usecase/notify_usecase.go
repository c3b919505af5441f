package usecase

import (
	"context"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/service"
	"gyomutime/pkg/errors"
)

type NotifyUseCase struct {
	email service.EmailService
}

// NewNotifyUseCase accepts a nil email service; sends then fail with
// not_configured instead of at startup.
func NewNotifyUseCase(email service.EmailService) *NotifyUseCase {
	return &NotifyUseCase{
		email: email,
	}
}

type SendNotificationInput struct {
	To      []string
	Subject string
	Body    string
}

// Send delivers an operational notification to the given recipients.
// Admin only. The subject is flattened to plain text; the body is
// admin-authored HTML and goes to the provider as-is.
func (uc *NotifyUseCase) Send(ctx context.Context, actor *entity.AuthUser, input SendNotificationInput) error {
	if !actor.IsAdmin() {
		return errors.Forbidden("admin only", nil)
	}
	if uc.email == nil {
		return errors.NotConfigured("email provider not configured")
	}
	if len(input.To) == 0 {
		return errors.BadRequest("at least one recipient is required", nil)
	}
	if input.Subject == "" {
		return errors.BadRequest("subject required", nil)
	}

	if err := uc.email.Send(ctx, input.To, sanitizePlain(input.Subject), input.Body); err != nil {
		return errors.Internal("Failed to send notification", err)
	}
	return nil
}
