package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

type stubAuthenticator struct {
	users map[string]*domain.User
	err   error
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[token]
	if !ok {
		return nil, domain.ErrMalformedToken
	}
	return u, nil
}

var alice = &domain.User{ID: "u1", Email: "alice@example.com", Name: "Alice", Role: domain.RoleFarmer}

func runAuth(t *testing.T, authn Authenticator, header string) (called bool, actor domain.Actor, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	err = Auth(authn)(func(c echo.Context) error {
		called = true
		actor, _ = ActorFrom(c)
		return nil
	})(c)
	return called, actor, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	called, actor, err := runAuth(t, stubAuthenticator{users: map[string]*domain.User{"tok": alice}}, "Bearer tok")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if actor.ID != "u1" || actor.Role != domain.RoleFarmer || actor.Name != "Alice" {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	authn := stubAuthenticator{users: map[string]*domain.User{"tok": alice}}
	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic tok",
		"empty token":    "Bearer ",
		"unknown token":  "Bearer nope",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			called, _, err := runAuth(t, authn, header)
			if called {
				t.Fatalf("next should not be called")
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestAuthMiddleware_ExpiredAndDeletedAreUnauthorized(t *testing.T) {
	for _, cause := range []error{domain.ErrExpiredToken, domain.ErrUnknownSubject} {
		_, _, err := runAuth(t, stubAuthenticator{err: cause}, "Bearer tok")
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %v", cause, err)
		}
	}
}
