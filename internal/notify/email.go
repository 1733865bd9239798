package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender is the best-effort notification side channel. Callers log
// failures and continue; a dead mailer must never fail a booking.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SendGridSender struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGridSender(apiKey, fromName, fromEmail string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SendGridSender) Send(_ context.Context, to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)

	resp, err := s.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d", resp.StatusCode)
	}
	return nil
}

// NopSender is used when no API key is configured.
type NopSender struct{}

func (NopSender) Send(_ context.Context, to, subject, _ string) error {
	log.Printf("email disabled, skipping %q to %s", subject, to)
	return nil
}
