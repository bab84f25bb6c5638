package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// PaymentGateway is the third-party checkout provider.
type PaymentGateway interface {
	// CreateOrder registers an order of amount currency subunits (paise, cents).
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.PaymentOrder, error)
	// VerifySignature checks the gateway's HMAC over "order_id|payment_id".
	VerifySignature(orderID, paymentID, signature string) bool
}

// PaymentReplayGuard remembers payment ids that were already verified.
type PaymentReplayGuard interface {
	// MarkVerified records paymentID and reports whether it was new.
	MarkVerified(ctx context.Context, paymentID string) (bool, error)
}

// PaymentService drives checkout against the gateway.
type PaymentService interface {
	CreateOrder(ctx context.Context, actor domain.Actor, amount float64, currency string) (*domain.PaymentOrder, error)
	Verify(ctx context.Context, actor domain.Actor, c domain.PaymentConfirmation) error
}
