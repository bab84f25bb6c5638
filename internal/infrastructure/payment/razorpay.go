// Package payment talks to the Razorpay payment gateway.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

type Config struct {
	KeyID     string
	KeySecret string
}

// orderCreator is the part of the Razorpay Orders resource the gateway uses.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// Razorpay implements ports.PaymentGateway over the Orders API.
type Razorpay struct {
	keySecret string
	orders    orderCreator
}

func NewRazorpay(cfg Config) *Razorpay {
	client := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	return &Razorpay{keySecret: cfg.KeySecret, orders: client.Order}
}

// CreateOrder registers an order of amount subunits with auto-capture.
// The SDK takes no context, so ctx is only checked before the call.
func (r *Razorpay) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.PaymentOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.orders.Create(map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay create order: response has no order id")
	}
	out := &domain.PaymentOrder{GatewayOrderID: id, Amount: amount, Currency: currency}
	// Amounts come back as JSON numbers.
	if v, ok := body["amount"].(float64); ok {
		out.Amount = int64(v)
	}
	if v, ok := body["currency"].(string); ok && v != "" {
		out.Currency = v
	}
	return out, nil
}

// Sign returns the checkout signature for orderID and paymentID.
func (r *Razorpay) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(r.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares signature with the expected value in constant time.
func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	expected := r.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
