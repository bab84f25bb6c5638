package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/policy"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// PaymentService creates gateway orders and verifies checkout signatures.
type PaymentService struct {
	gateway  ports.PaymentGateway
	guard    ports.PaymentReplayGuard
	currency string
	keyID    string
	log      zerolog.Logger
}

// NewPaymentService wires the gateway. guard may be nil, in which case
// replayed confirmations are not detected.
func NewPaymentService(gateway ports.PaymentGateway, guard ports.PaymentReplayGuard, currency, keyID string, log zerolog.Logger) *PaymentService {
	if currency == "" {
		currency = "INR"
	}
	return &PaymentService{gateway: gateway, guard: guard, currency: currency, keyID: keyID, log: log}
}

// CreateOrder registers amount (major units) with the gateway.
func (s *PaymentService) CreateOrder(ctx context.Context, actor domain.Actor, amount float64, currency string) (*domain.PaymentOrder, error) {
	if err := policy.Authorize(actor, policy.CreatePayment, policy.Resource{}); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if currency == "" {
		currency = s.currency
	}

	subunits := decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	po, err := s.gateway.CreateOrder(ctx, subunits, strings.ToUpper(currency), receipt)
	if err != nil {
		return nil, fmt.Errorf("create payment order: %w", err)
	}
	po.KeyID = s.keyID

	s.log.Info().Str("gateway_order_id", po.GatewayOrderID).Str("buyer_id", actor.ID).Int64("amount", po.Amount).Msg("payment order created")
	return po, nil
}

// Verify checks the gateway signature for a completed checkout.
func (s *PaymentService) Verify(ctx context.Context, actor domain.Actor, c domain.PaymentConfirmation) error {
	if err := policy.Authorize(actor, policy.VerifyPayment, policy.Resource{}); err != nil {
		return err
	}
	if c.OrderID == "" || c.PaymentID == "" || c.Signature == "" {
		return fmt.Errorf("%w: order id, payment id and signature are required", domain.ErrValidation)
	}
	if !s.gateway.VerifySignature(c.OrderID, c.PaymentID, c.Signature) {
		s.log.Warn().Str("gateway_order_id", c.OrderID).Msg("payment signature mismatch")
		return domain.ErrPaymentVerification
	}

	if s.guard != nil {
		fresh, err := s.guard.MarkVerified(ctx, c.PaymentID)
		if err != nil {
			s.log.Warn().Err(err).Str("payment_id", c.PaymentID).Msg("replay guard unavailable, accepting")
		} else if !fresh {
			return domain.ErrPaymentReplay
		}
	}

	s.log.Info().Str("gateway_order_id", c.OrderID).Str("payment_id", c.PaymentID).Msg("payment verified")
	return nil
}
