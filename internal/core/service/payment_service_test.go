package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

type stubGateway struct {
	amount   int64
	currency string
	receipt  string
	validSig string
	err      error
}

func (g *stubGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*domain.PaymentOrder, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.amount, g.currency, g.receipt = amount, currency, receipt
	return &domain.PaymentOrder{GatewayOrderID: "order_123", Amount: amount, Currency: currency}, nil
}

func (g *stubGateway) VerifySignature(_, _, signature string) bool {
	return signature == g.validSig
}

type stubReplayGuard struct {
	seen map[string]bool
	err  error
}

func (g *stubReplayGuard) MarkVerified(_ context.Context, paymentID string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	if g.seen[paymentID] {
		return false, nil
	}
	g.seen[paymentID] = true
	return true, nil
}

var testBuyer = domain.Actor{ID: "b1", Role: domain.RoleBuyer}

func TestPaymentService_CreateOrder(t *testing.T) {
	gw := &stubGateway{}
	svc := NewPaymentService(gw, nil, "inr", "rzp_test_key", discardLogger)

	po, err := svc.CreateOrder(context.Background(), testBuyer, 110.10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(11010), gw.amount)
	assert.Equal(t, "INR", gw.currency)
	assert.NotEmpty(t, gw.receipt)
	assert.LessOrEqual(t, len(gw.receipt), 40)
	assert.Equal(t, "rzp_test_key", po.KeyID)
	assert.Equal(t, "order_123", po.GatewayOrderID)
}

func TestPaymentService_CreateOrder_Rejects(t *testing.T) {
	svc := NewPaymentService(&stubGateway{}, nil, "", "", discardLogger)

	_, err := svc.CreateOrder(context.Background(), testBuyer, 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateOrder(context.Background(), domain.Actor{ID: "f1", Role: domain.RoleFarmer}, 10, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	failing := NewPaymentService(&stubGateway{err: errors.New("gateway down")}, nil, "", "", discardLogger)
	_, err = failing.CreateOrder(context.Background(), testBuyer, 10, "")
	assert.Error(t, err)
}

func TestPaymentService_Verify(t *testing.T) {
	guard := &stubReplayGuard{seen: map[string]bool{}}
	svc := NewPaymentService(&stubGateway{validSig: "good"}, guard, "", "", discardLogger)
	ok := domain.PaymentConfirmation{OrderID: "order_123", PaymentID: "pay_1", Signature: "good"}

	require.NoError(t, svc.Verify(context.Background(), testBuyer, ok))
	assert.ErrorIs(t, svc.Verify(context.Background(), testBuyer, ok), domain.ErrPaymentReplay)

	bad := ok
	bad.PaymentID, bad.Signature = "pay_2", "forged"
	assert.ErrorIs(t, svc.Verify(context.Background(), testBuyer, bad), domain.ErrPaymentVerification)

	assert.ErrorIs(t, svc.Verify(context.Background(), testBuyer, domain.PaymentConfirmation{}), domain.ErrValidation)
}

func TestPaymentService_Verify_GuardOutageAccepts(t *testing.T) {
	guard := &stubReplayGuard{err: errors.New("redis down")}
	svc := NewPaymentService(&stubGateway{validSig: "good"}, guard, "", "", discardLogger)

	err := svc.Verify(context.Background(), testBuyer, domain.PaymentConfirmation{OrderID: "o", PaymentID: "p", Signature: "good"})
	assert.NoError(t, err)
}
