package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"gyomutime/internal/domain/service"
)

type sendgridService struct {
	key  string
	from *sgmail.Email
}

var _ service.EmailService = (*sendgridService)(nil)

func NewSendgridService(key, fromEmail string) service.EmailService {
	return &sendgridService{
		key:  key,
		from: sgmail.NewEmail("Gyomutime", fromEmail),
	}
}

func (s *sendgridService) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	p := sgmail.NewPersonalization()
	p.Subject = subject
	for _, addr := range to {
		p.AddTos(sgmail.NewEmail("", addr))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", htmlBody))

	req := sendgrid.GetRequest(s.key, "/v3/mail/send", "https://api.sendgrid.com")
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid rejected message: %d %s", resp.StatusCode, resp.Body)
	}
	return nil
}
