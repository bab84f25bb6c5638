package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.StoreBackend != "mongo" {
		t.Fatalf("unexpected defaults: port=%s backend=%s", cfg.Port, cfg.StoreBackend)
	}
	if cfg.Auth.SessionTTL != 7*24*time.Hour {
		t.Fatalf("expected 168h session ttl, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.Orders.StrictTransitions || cfg.Orders.SingleSeller {
		t.Fatalf("unexpected order defaults: %+v", cfg.Orders)
	}
	if cfg.Mongo.Database != "marketplace" {
		t.Fatalf("unexpected mongo db: %s", cfg.Mongo.Database)
	}
	if cfg.Contact.RateLimit != 0.2 || cfg.Contact.Burst != 3 {
		t.Fatalf("unexpected contact defaults: %+v", cfg.Contact)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadWith_RequiresSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":               "s3cret",
		"STORE_BACKEND":            "memory",
		"CORS_ORIGINS":             "https://a.example,https://b.example",
		"ORDER_STRICT_TRANSITIONS": "true",
		"SESSION_TTL":              "1h",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreBackend != "memory" || !cfg.Orders.StrictTransitions {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.Auth.SessionTTL != time.Hour {
		t.Fatalf("expected 1h, got %s", cfg.Auth.SessionTTL)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{StoreBackend: "mongo", Auth: AuthConfig{LoginMaxAttempts: 5}}
	}

	bad := base()
	bad.StoreBackend = "sqlite"
	if bad.Validate() == nil {
		t.Fatalf("expected error for unknown backend")
	}

	seed := base()
	seed.Admin.Email = "root@example.com"
	if seed.Validate() == nil {
		t.Fatalf("expected error for admin email without password")
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestContactInbox(t *testing.T) {
	cfg := &Config{Mail: MailConfig{From: "noreply@example.com"}}
	if got := cfg.ContactInbox(); got != "noreply@example.com" {
		t.Fatalf("expected MAIL_FROM fallback, got %q", got)
	}
	cfg.Admin.Email = "admin@example.com"
	if got := cfg.ContactInbox(); got != "admin@example.com" {
		t.Fatalf("expected ADMIN_EMAIL fallback, got %q", got)
	}
	cfg.Contact.Inbox = "hello@example.com"
	if got := cfg.ContactInbox(); got != "hello@example.com" {
		t.Fatalf("expected CONTACT_INBOX, got %q", got)
	}
}
