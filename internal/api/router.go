package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/farmlink/marketplace-api/docs"
	"github.com/farmlink/marketplace-api/internal/api/handler"
	"github.com/farmlink/marketplace-api/internal/api/middleware"
	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
	"github.com/farmlink/marketplace-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth     ports.AuthService
	Catalog  ports.CatalogService
	Orders   ports.OrderService
	Admin    ports.AdminService
	Payments ports.PaymentService
	Contact  ports.ContactService

	Health    *handlers.HealthHandler
	Readiness *handlers.HealthDependenciesHandler

	Log         zerolog.Logger
	CORSOrigins []string

	// ContactRate is the sustained per-IP rate of contact submissions per
	// second; ContactBurst the bucket size.
	ContactRate  float64
	ContactBurst int

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "marketplace",
		Registerer: registerer,
	}))

	// --- Operational endpoints ---
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authn := middleware.Auth(d.Auth)

	authHandler := handler.NewAuthHandler(d.Auth)
	productHandler := handler.NewProductHandler(d.Catalog)
	orderHandler := handler.NewOrderHandler(d.Orders)
	adminHandler := handler.NewAdminHandler(d.Admin)
	paymentHandler := handler.NewPaymentHandler(d.Payments)
	contactHandler := handler.NewContactHandler(d.Contact)

	g := e.Group("/api")
	g.GET("/", d.Health.Banner)

	// --- Auth routes ---
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)
	g.GET("/auth/me", authHandler.Me, authn)

	// --- Catalog ---
	g.GET("/products", productHandler.List)
	g.GET("/products/:id", productHandler.Get)
	g.POST("/products", productHandler.Create, authn, middleware.RBAC(domain.RoleFarmer))
	g.PUT("/products/:id", productHandler.Update, authn)
	g.DELETE("/products/:id", productHandler.Delete, authn)
	g.GET("/farmer/products", productHandler.ListMine, authn, middleware.RBAC(domain.RoleFarmer))

	// --- Orders ---
	g.POST("/orders", orderHandler.Create, authn, middleware.RBAC(domain.RoleBuyer))
	g.GET("/orders", orderHandler.List, authn)
	g.GET("/orders/:id", orderHandler.Get, authn)
	g.PUT("/orders/:id/status", orderHandler.UpdateStatus, authn)

	// --- Admin ---
	admin := g.Group("/admin", authn, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.Users)
	admin.GET("/stats", adminHandler.Stats)

	// --- Payments ---
	payments := g.Group("/payments", authn, middleware.RBAC(domain.RoleBuyer))
	payments.POST("/create-order", paymentHandler.CreateOrder)
	payments.POST("/verify", paymentHandler.Verify)

	// --- Contact (public, throttled per client IP) ---
	g.POST("/contact", contactHandler.Submit, contactLimiter(d.ContactRate, d.ContactBurst))

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func contactLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		perSecond = 0.2
	}
	if burst <= 0 {
		burst = 1
	}
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perSecond),
			Burst:     burst,
			ExpiresIn: 10 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
