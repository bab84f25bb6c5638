package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/farmlink/marketplace-api/internal/api/middleware"
	"github.com/farmlink/marketplace-api/internal/core/domain"
)

var (
	farmer = domain.Actor{ID: "f1", Role: domain.RoleFarmer, Name: "Fiona", Email: "fiona@example.com"}
	buyer  = domain.Actor{ID: "b1", Role: domain.RoleBuyer, Name: "Bob", Email: "bob@example.com"}
	admin  = domain.Actor{ID: "a1", Role: domain.RoleAdmin, Name: "Ada", Email: "ada@example.com"}
)

// newContext builds an echo context carrying body as JSON and, when actor is
// not anonymous, the actor the Auth middleware would have injected.
func newContext(method, target, body string, actor domain.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if !actor.Anonymous() {
		c.Set(middleware.ActorKey, actor)
	}
	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
