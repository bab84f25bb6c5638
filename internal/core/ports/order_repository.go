package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// OrderFilter scopes an order listing. Empty fields mean no restriction.
type OrderFilter struct {
	BuyerID  string
	FarmerID string
	Limit    int
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	// Count returns the number of orders in status; an empty status counts all.
	Count(ctx context.Context, status domain.OrderStatus) (int64, error)
}
