package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// CreateOrderInput is a buyer's checkout request.
type CreateOrderInput struct {
	Items           []domain.OrderItem
	DeliveryAddress string
	PaymentMethod   string
}

// OrderService validates and materializes orders and drives their status.
type OrderService interface {
	Create(ctx context.Context, actor domain.Actor, in CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, actor domain.Actor) ([]*domain.Order, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Order, error)
	SetStatus(ctx context.Context, actor domain.Actor, id, status string) error
}
