package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubBroker struct{ err error }

func (b stubBroker) Ping(context.Context) error { return b.err }

func readiness(t *testing.T, h *HealthDependenciesHandler) (int, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("readiness returned error: %v", err)
	}
	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec.Code, body
}

func TestReadiness_AllDisabled(t *testing.T) {
	code, body := readiness(t, NewHealthDependenciesHandler(nil, nil, nil))
	if code != http.StatusOK || body.Status != "ok" {
		t.Fatalf("expected 200 ok, got %d %s", code, body.Status)
	}
	for name, dep := range body.Dependencies {
		if dep.Status != "disabled" {
			t.Fatalf("%s: expected disabled, got %s", name, dep.Status)
		}
	}
}

func TestReadiness_BrokerDown(t *testing.T) {
	code, body := readiness(t, NewHealthDependenciesHandler(nil, nil, stubBroker{err: errors.New("no servers")}))
	if code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Fatalf("expected 503 degraded, got %d %s", code, body.Status)
	}
	if body.Dependencies["nats"].Error != "no servers" {
		t.Fatalf("unexpected nats status: %+v", body.Dependencies["nats"])
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	if err := NewHealthHandler().Liveness(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)); err != nil {
		t.Fatalf("liveness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
