// Command api serves the marketplace HTTP API.
//
// @title                       Marketplace API
// @version                     1.0
// @description                 Farm-to-buyer marketplace: accounts, product catalog, orders, payments.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/farmlink/marketplace-api/internal/api"
	"github.com/farmlink/marketplace-api/internal/core/ports"
	"github.com/farmlink/marketplace-api/internal/core/service"
	"github.com/farmlink/marketplace-api/internal/infrastructure/db/memory"
	"github.com/farmlink/marketplace-api/internal/infrastructure/db/mongo"
	"github.com/farmlink/marketplace-api/internal/infrastructure/db/redis"
	"github.com/farmlink/marketplace-api/internal/infrastructure/events"
	"github.com/farmlink/marketplace-api/internal/infrastructure/http/handlers"
	"github.com/farmlink/marketplace-api/internal/infrastructure/mail"
	"github.com/farmlink/marketplace-api/internal/infrastructure/payment"
	"github.com/farmlink/marketplace-api/internal/infrastructure/queue"
	"github.com/farmlink/marketplace-api/internal/pkg/config"
	"github.com/farmlink/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	users    ports.UserRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "marketplace-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Persistence ---
	var (
		repos       repositories
		mongoClient *mongodriver.Client
		db          *mongodriver.Database
	)
	switch cfg.StoreBackend {
	case "memory":
		store := memory.NewStore()
		repos = repositories{users: store.Users(), products: store.Products(), orders: store.Orders()}
		log.Warn().Msg("using in-memory store, data is lost on restart")
	default:
		var err error
		mongoClient, db, err = mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to create mongodb indexes")
		}
		repos = repositories{
			users:    mongo.NewUserRepository(db),
			products: mongo.NewProductRepository(db),
			orders:   mongo.NewOrderRepository(db),
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	// --- Redis (login throttling, payment replay guard) ---
	var (
		rdb     *goredis.Client
		limiter ports.LoginLimiter
		guard   ports.PaymentReplayGuard
	)
	if cfg.Redis.Enabled {
		var err error
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		limiter = redis.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
		guard = redis.NewPaymentGuard(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	// --- Mail ---
	mailer, err := mail.New(mail.Config{
		Provider:       cfg.Mail.Provider,
		From:           cfg.Mail.From,
		FromName:       cfg.Mail.FromName,
		SendGridAPIKey: cfg.Mail.SendGridAPIKey,
		SMTPHost:       cfg.Mail.SMTPHost,
		SMTPPort:       cfg.Mail.SMTPPort,
		SMTPUsername:   cfg.Mail.SMTPUsername,
		SMTPPassword:   cfg.Mail.SMTPPassword,
	}, logger.Component("mail"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure mailer")
	}
	dispatcher := queue.NewMailDispatcher(cfg.Mail.Workers, mailer, logger.Component("mail_dispatcher"))
	// Not the signal context: queued mail is still delivered during shutdown.
	dispatcher.Start(context.Background())

	// --- Events ---
	var (
		publisher ports.EventPublisher = events.NoopPublisher{}
		broker    handlers.BrokerPinger
		natsPub   *events.NATSPublisher
	)
	if cfg.NATS.URL != "" {
		natsPub, err = events.Connect(cfg.NATS.URL, logger.Component("events"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to nats")
		}
		publisher, broker = natsPub, natsPub
	}

	// --- Services ---
	sessions := service.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authService := service.NewAuthService(repos.users, service.NewBcryptHasher(bcrypt.DefaultCost), sessions,
		logger.Component("auth"), service.AuthOptions{
			AllowAdminRegistration: cfg.Auth.AllowAdminRegistration,
			Limiter:                limiter,
		})
	seedAdmin(ctx, authService, cfg, log)

	gateway := payment.NewRazorpay(payment.Config{
		KeyID:     cfg.Payment.KeyID,
		KeySecret: cfg.Payment.KeySecret,
	})
	if cfg.Payment.KeySecret == "" {
		log.Warn().Msg("RAZORPAY_KEY_SECRET not set, payment verification will always fail")
	}

	router := api.NewRouter(api.Deps{
		Auth:    authService,
		Catalog: service.NewCatalogService(repos.products, logger.Component("catalog")),
		Orders: service.NewOrderService(repos.orders, repos.products, logger.Component("orders"), service.OrderOptions{
			StrictTransitions: cfg.Orders.StrictTransitions,
			SingleSeller:      cfg.Orders.SingleSeller,
			Mail:              dispatcher,
			Events:            publisher,
		}),
		Admin:        service.NewAdminService(repos.users, repos.products, repos.orders),
		Payments:     service.NewPaymentService(gateway, guard, cfg.Payment.Currency, cfg.Payment.KeyID, logger.Component("payments")),
		Contact:      service.NewContactService(dispatcher, cfg.ContactInbox(), logger.Component("contact")),
		Health:       handlers.NewHealthHandler(),
		Readiness:    handlers.NewHealthDependenciesHandler(db, rdb, broker),
		Log:          logger.Component("http"),
		CORSOrigins:  cfg.CORSOrigins,
		ContactRate:  cfg.Contact.RateLimit,
		ContactBurst: cfg.Contact.Burst,
	})

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	dispatcher.Close()
	if natsPub != nil {
		natsPub.Close()
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}
	log.Info().Msg("stopped")
}

// seedAdmin creates the configured admin account on first start.
func seedAdmin(ctx context.Context, auth *service.AuthService, cfg *config.Config, log zerolog.Logger) {
	if cfg.Admin.Email == "" {
		return
	}
	created, err := auth.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}
	if created {
		log.Info().Msg("admin account created")
	}
}
