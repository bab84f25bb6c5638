package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// ContactService forwards contact-form messages to the admin mailbox.
type ContactService struct {
	mail  ports.MailQueue
	inbox string
	log   zerolog.Logger
}

func NewContactService(mail ports.MailQueue, inbox string, log zerolog.Logger) *ContactService {
	return &ContactService{mail: mail, inbox: inbox, log: log}
}

// Submit queues msg for delivery. Delivery itself is fire-and-forget.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Subject) == "" || strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: name, email, subject and message are required", domain.ErrValidation)
	}

	if s.mail == nil || s.inbox == "" {
		s.log.Warn().Str("subject", msg.Subject).Msg("contact inbox not configured, message discarded")
		return nil
	}

	body, err := renderContact(msg)
	if err != nil {
		return fmt.Errorf("render contact: %w", err)
	}
	if !s.mail.Enqueue(domain.MailMessage{
		To:      s.inbox,
		ReplyTo: msg.Email,
		Subject: "Contact form: " + msg.Subject,
		HTML:    body,
	}) {
		s.log.Warn().Str("subject", msg.Subject).Msg("mail queue full, contact message dropped")
	}
	return nil
}
