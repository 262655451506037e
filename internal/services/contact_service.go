package services

import (
	"context"

	"github.com/ecanay/blogfolio-backend/internal/mailer"
	"github.com/ecanay/blogfolio-backend/internal/metrics"
)

type ContactService struct {
	m mailer.Sender
}

func NewContactService(m mailer.Sender) *ContactService {
	return &ContactService{m: m}
}

// Send delivers the contact message synchronously; a provider failure
// is returned to the caller in the same response cycle, no retries.
func (s *ContactService) Send(ctx context.Context, name, email, message string) error {
	if err := s.m.SendContact(ctx, name, email, message); err != nil {
		return err
	}
	metrics.ContactEmailsTotal.Inc()
	return nil
}
