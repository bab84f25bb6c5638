// Package mail provides ports.Mailer implementations. Provider selection
// happens once at startup through New.
package mail

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// Provider names accepted by New.
const (
	ProviderLog      = "log"
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
)

type Config struct {
	Provider string
	From     string
	FromName string

	SendGridAPIKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

// New builds the mailer named by cfg.Provider.
func New(cfg Config, log zerolog.Logger) (ports.Mailer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderLog:
		return NewLogMailer(log), nil
	case ProviderSMTP:
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("mail: smtp provider requires SMTP_HOST")
		}
		return NewSMTPMailer(cfg), nil
	case ProviderSendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("mail: sendgrid provider requires SENDGRID_API_KEY")
		}
		return NewSendGridMailer(cfg), nil
	}
	return nil, fmt.Errorf("mail: unknown provider %q", cfg.Provider)
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`[ \t]*\n[\s]*`)
)

// plainText derives a text/plain alternative from an HTML body.
func plainText(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	text = spacePattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
