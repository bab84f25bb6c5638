package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const paymentGuardTTL = 7 * 24 * time.Hour

// PaymentGuard remembers verified payment ids so a confirmation cannot be
// replayed. Key format: payment_verified:<payment_id>
type PaymentGuard struct {
	client *redis.Client
}

func NewPaymentGuard(client *redis.Client) *PaymentGuard {
	return &PaymentGuard{client: client}
}

// MarkVerified records paymentID and reports whether it was seen for the
// first time.
func (g *PaymentGuard) MarkVerified(ctx context.Context, paymentID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, "payment_verified:"+paymentID, "1", paymentGuardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("payment guard: %w", err)
	}
	return ok, nil
}
