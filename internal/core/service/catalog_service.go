package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/policy"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// ProductListCap bounds every product listing.
const ProductListCap = 1000

// CatalogService manages product listings under ownership rules.
type CatalogService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

// Create lists a new product owned by actor. Price and quantity signs are
// not checked.
func (s *CatalogService) Create(ctx context.Context, actor domain.Actor, draft domain.ProductDraft) (*domain.Product, error) {
	if err := policy.Authorize(actor, policy.CreateProduct, policy.Resource{}); err != nil {
		return nil, err
	}

	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		Price:       draft.Price,
		Quantity:    draft.Quantity,
		Unit:        draft.Unit,
		FarmerID:    actor.ID,
		FarmerName:  actor.Name,
		Location:    draft.Location,
		ImageURL:    draft.ImageURL,
		Available:   true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info().Str("product_id", p.ID).Str("farmer_id", p.FarmerID).Msg("product created")
	return p, nil
}

// Get returns a single product regardless of availability.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update applies the present fields of patch. Only the owning farmer or an
// admin may update.
func (s *CatalogService) Update(ctx context.Context, actor domain.Actor, id string, patch domain.ProductPatch) (*domain.Product, error) {
	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if err := policy.Authorize(actor, policy.UpdateProduct, policy.Owned(current.FarmerID)); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	updated, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product updated")
	return updated, nil
}

// Delete removes a product. Only the owning farmer or an admin may delete.
func (s *CatalogService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if err := policy.Authorize(actor, policy.DeleteProduct, policy.Owned(current.FarmerID)); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product deleted")
	return nil
}

// List returns available products matching q.
func (s *CatalogService) List(ctx context.Context, q ports.ProductQuery) ([]*domain.Product, error) {
	items, err := s.products.List(ctx, ports.ProductFilter{
		Category:      strings.TrimSpace(q.Category),
		Search:        strings.TrimSpace(q.Search),
		AvailableOnly: true,
		Limit:         ProductListCap,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

// ListByFarmer returns every product the calling farmer owns, available or not.
func (s *CatalogService) ListByFarmer(ctx context.Context, actor domain.Actor) ([]*domain.Product, error) {
	if err := policy.Authorize(actor, policy.ListOwnProducts, policy.Resource{}); err != nil {
		return nil, err
	}
	items, err := s.products.List(ctx, ports.ProductFilter{FarmerID: actor.ID, Limit: ProductListCap})
	if err != nil {
		return nil, fmt.Errorf("list farmer products: %w", err)
	}
	return items, nil
}
