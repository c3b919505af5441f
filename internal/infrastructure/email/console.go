package email

import (
	"context"
	"strings"

	"gyomutime/internal/domain/service"
	"gyomutime/pkg/logger"
)

// consoleService logs messages instead of delivering them. Used in
// development and in tests.
type consoleService struct{}

var _ service.EmailService = (*consoleService)(nil)

func NewConsoleService() service.EmailService {
	return &consoleService{}
}

func (s *consoleService) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	logger.Info("email to=%s subject=%q body=%d bytes", strings.Join(to, ","), subject, len(htmlBody))
	return nil
}
