package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/mail.v2"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// SMTPMailer delivers through an SMTP relay.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUsername, cfg.SMTPPassword),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// message builds the MIME message for msg.
func (m *SMTPMailer) message(msg domain.MailMessage) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", plainText(msg.HTML))
	gm.AddAlternative("text/html", msg.HTML)
	return gm
}

// Send dials the relay for each message. The SMTP client does not take a
// context, so ctx is only checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(m.message(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
