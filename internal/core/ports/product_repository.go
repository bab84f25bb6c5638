package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// ProductFilter carries the predicate filters for product listings.
type ProductFilter struct {
	Category      string // optional: exact match
	Search        string // optional: case-insensitive substring on name or description
	FarmerID      string // optional: owner scope
	AvailableOnly bool
	Limit         int
}

// ProductRepository defines persistence operations for product listings.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Update applies the present fields of patch and returns the stored result.
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Count(ctx context.Context) (int64, error)
}
