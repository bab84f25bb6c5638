package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// ActorKey is the echo.Context key holding the authenticated domain.Actor.
const ActorKey = "actor"

// Authenticator resolves a bearer token to a live user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth validates the bearer token and injects the actor into context.
func Auth(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := authn.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				if domain.IsTokenError(err) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return err
			}

			c.Set(ActorKey, user.Actor())
			return next(c)
		}
	}
}

// ActorFrom returns the actor set by Auth, if any.
func ActorFrom(c echo.Context) (domain.Actor, bool) {
	a, ok := c.Get(ActorKey).(domain.Actor)
	return a, ok && !a.Anonymous()
}
