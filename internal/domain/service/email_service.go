package service

import (
	"context"
)

type EmailService interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}
