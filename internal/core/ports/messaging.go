package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// Mailer delivers a single email.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// MailQueue accepts mail for asynchronous delivery. Enqueue never blocks the
// caller and reports whether the message was accepted.
type MailQueue interface {
	Enqueue(msg domain.MailMessage) bool
}

// EventPublisher emits domain events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// ContactService accepts public contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

// LoginLimiter throttles repeated failed logins per key.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Fail(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
