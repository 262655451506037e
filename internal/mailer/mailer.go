// Package mailer sends outbound mail through the Resend API.
package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
)

// Sender delivers a rendered contact message. Satisfied by the Resend
// client wrapper; tests substitute their own.
type Sender interface {
	SendContact(ctx context.Context, name, email, message string) error
}

type Resend struct {
	client *resend.Client
	from   string
	to     string
}

func New(apiKey, from, to string) *Resend {
	return &Resend{client: resend.NewClient(apiKey), from: from, to: to}
}

func (m *Resend) SendContact(ctx context.Context, name, email, message string) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: email,
		Subject: "New contact message from " + name,
		Html:    contactHTML(name, email, message),
	})
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func contactHTML(name, email, message string) string {
	return fmt.Sprintf(`<div style="font-family:sans-serif;max-width:600px;margin:0 auto">
  <h2>New contact message</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <hr>
  <p style="white-space:pre-wrap">%s</p>
</div>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))
}
