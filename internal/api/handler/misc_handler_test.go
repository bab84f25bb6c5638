package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

type stubAdmin struct{}

func (stubAdmin) ListUsers(_ context.Context, actor domain.Actor) ([]*domain.User, error) {
	if !actor.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	return []*domain.User{{ID: "a1"}, {ID: "b1"}}, nil
}

func (stubAdmin) Stats(_ context.Context, actor domain.Actor) (*domain.Stats, error) {
	if !actor.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	return &domain.Stats{TotalUsers: 2, TotalOrders: 3, PendingOrders: 1}, nil
}

func TestAdminHandler(t *testing.T) {
	h := NewAdminHandler(stubAdmin{})

	c, rec := newContext(http.MethodGet, "/api/admin/users", "", admin)
	if err := h.Users(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if users := decode[[]domain.User](t, rec); len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	c, rec = newContext(http.MethodGet, "/api/admin/stats", "", admin)
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	st := decode[map[string]float64](t, rec)
	if st["total_users"] != 2 || st["pending_orders"] != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}

	c, _ = newContext(http.MethodGet, "/api/admin/stats", "", buyer)
	if err := h.Stats(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

type stubPayments struct {
	amount   float64
	currency string
	conf     domain.PaymentConfirmation
	err      error
}

func (s *stubPayments) CreateOrder(_ context.Context, _ domain.Actor, amount float64, currency string) (*domain.PaymentOrder, error) {
	s.amount, s.currency = amount, currency
	return &domain.PaymentOrder{GatewayOrderID: "order_1", Amount: 3495, Currency: "INR", KeyID: "rzp_test"}, nil
}

func (s *stubPayments) Verify(_ context.Context, _ domain.Actor, c domain.PaymentConfirmation) error {
	s.conf = c
	return s.err
}

func TestPaymentHandler_CreateOrder(t *testing.T) {
	stub := &stubPayments{}
	c, rec := newContext(http.MethodPost, "/api/payments/create-order", `{"amount":34.95}`, buyer)

	if err := NewPaymentHandler(stub).CreateOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
	if stub.amount != 34.95 || stub.currency != "" {
		t.Fatalf("unexpected args: %v %q", stub.amount, stub.currency)
	}
	resp := decode[map[string]any](t, rec)
	if resp["order_id"] != "order_1" || resp["amount"] != float64(3495) || resp["key"] != "rzp_test" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPaymentHandler_CreateOrderRejectsZero(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/payments/create-order", `{"amount":0}`, buyer)
	if got := httpCode(t, NewPaymentHandler(&stubPayments{}).CreateOrder(c)); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", got)
	}
}

func TestPaymentHandler_Verify(t *testing.T) {
	body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`

	stub := &stubPayments{}
	c, rec := newContext(http.MethodPost, "/api/payments/verify", body, buyer)
	if err := NewPaymentHandler(stub).Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
	if stub.conf.PaymentID != "pay_1" || stub.conf.Signature != "sig" {
		t.Fatalf("unexpected confirmation: %+v", stub.conf)
	}
	if resp := decode[verifyPaymentResponse](t, rec); !resp.Success {
		t.Fatalf("expected success")
	}

	stub = &stubPayments{err: domain.ErrPaymentVerification}
	c, _ = newContext(http.MethodPost, "/api/payments/verify", body, buyer)
	if err := NewPaymentHandler(stub).Verify(c); !errors.Is(err, domain.ErrPaymentVerification) {
		t.Fatalf("expected ErrPaymentVerification, got %v", err)
	}
}

func TestPaymentResult(t *testing.T) {
	if got := paymentResult(domain.ErrPaymentReplay); got != "replay" {
		t.Fatalf("expected replay, got %s", got)
	}
	if got := paymentResult(nil); got != "ok" {
		t.Fatalf("expected ok, got %s", got)
	}
}

type stubContact struct {
	got *domain.ContactMessage
}

func (s *stubContact) Submit(_ context.Context, msg domain.ContactMessage) error {
	s.got = &msg
	return nil
}

func TestContactHandler_Submit(t *testing.T) {
	stub := &stubContact{}
	c, rec := newContext(http.MethodPost, "/api/contact",
		`{"name":"Vee","email":"vee@example.com","subject":"Hello","message":"Do you ship to Goa?"}`, domain.Actor{})

	if err := NewContactHandler(stub).Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectStatus(t, rec, http.StatusOK)
	if stub.got == nil || stub.got.Email != "vee@example.com" || stub.got.Phone != "" {
		t.Fatalf("unexpected message: %+v", stub.got)
	}
}

func TestContactHandler_SubmitInvalidEmail(t *testing.T) {
	stub := &stubContact{}
	c, _ := newContext(http.MethodPost, "/api/contact",
		`{"name":"Vee","email":"not-an-email","subject":"Hello","message":"Hi"}`, domain.Actor{})

	if got := httpCode(t, NewContactHandler(stub).Submit(c)); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", got)
	}
	if stub.got != nil {
		t.Fatalf("service must not be called")
	}
}
