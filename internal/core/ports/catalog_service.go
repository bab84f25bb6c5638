package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// ProductQuery is the public listing query.
type ProductQuery struct {
	Category string
	Search   string
}

// CatalogService manages product listings under ownership rules.
type CatalogService interface {
	Create(ctx context.Context, actor domain.Actor, draft domain.ProductDraft) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	List(ctx context.Context, q ProductQuery) ([]*domain.Product, error)
	ListByFarmer(ctx context.Context, actor domain.Actor) ([]*domain.Product, error)
}
