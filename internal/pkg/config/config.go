package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StoreBackend selects persistence: "mongo" or "memory".
	StoreBackend string   `env:"STORE_BACKEND, default=mongo"`
	CORSOrigins  []string `env:"CORS_ORIGINS,  default=*"`

	Auth    AuthConfig
	Admin   AdminConfig
	Orders  OrderConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Mail    MailConfig
	Payment PaymentConfig
	NATS    NATSConfig
	Contact ContactConfig
}

type AuthConfig struct {
	JWTSecret              string        `env:"JWT_SECRET, required"`
	SessionTTL             time.Duration `env:"SESSION_TTL, default=168h"`
	AllowAdminRegistration bool          `env:"ALLOW_ADMIN_REGISTRATION, default=false"`
	LoginMaxAttempts       int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	LoginWindow            time.Duration `env:"LOGIN_WINDOW, default=15m"`
}

// AdminConfig seeds an admin account at startup when Email is set.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
	Name     string `env:"ADMIN_NAME, default=Administrator"`
}

type OrderConfig struct {
	StrictTransitions bool `env:"ORDER_STRICT_TRANSITIONS, default=false"`
	SingleSeller      bool `env:"ORDER_SINGLE_SELLER,      default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=marketplace"`
}

type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED,  default=true"`
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MailConfig struct {
	Provider       string `env:"MAIL_PROVIDER,  default=log"`
	From           string `env:"MAIL_FROM,      default=noreply@marketplace.local"`
	FromName       string `env:"MAIL_FROM_NAME, default=Marketplace"`
	Workers        int    `env:"MAIL_WORKERS,   default=2"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	SMTPHost       string `env:"SMTP_HOST"`
	SMTPPort       int    `env:"SMTP_PORT,      default=587"`
	SMTPUsername   string `env:"SMTP_USERNAME"`
	SMTPPassword   string `env:"SMTP_PASSWORD"`
}

type PaymentConfig struct {
	KeyID     string `env:"RAZORPAY_KEY_ID"`
	KeySecret string `env:"RAZORPAY_KEY_SECRET"`
	Currency  string `env:"PAYMENT_CURRENCY,  default=INR"`
}

// NATSConfig enables event publishing when URL is set.
type NATSConfig struct {
	URL string `env:"NATS_URL"`
}

// ContactConfig throttles the public contact form. Inbox receives the
// messages; see ContactInbox for the fallback chain.
type ContactConfig struct {
	Inbox     string  `env:"CONTACT_INBOX"`
	RateLimit float64 `env:"CONTACT_RATE_LIMIT, default=0.2"`
	Burst     int     `env:"CONTACT_BURST,      default=3"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// ContactInbox is the mailbox contact messages go to: CONTACT_INBOX, then
// ADMIN_EMAIL, then MAIL_FROM.
func (c *Config) ContactInbox() string {
	switch {
	case c.Contact.Inbox != "":
		return c.Contact.Inbox
	case c.Admin.Email != "":
		return c.Admin.Email
	}
	return c.Mail.From
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "mongo", "memory":
	default:
		return fmt.Errorf("config: STORE_BACKEND must be mongo or memory, got %q", c.StoreBackend)
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		return fmt.Errorf("config: ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}
	if c.Auth.LoginMaxAttempts <= 0 {
		return fmt.Errorf("config: LOGIN_MAX_ATTEMPTS must be positive")
	}
	return nil
}

// LoadWith reads configuration through lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}
