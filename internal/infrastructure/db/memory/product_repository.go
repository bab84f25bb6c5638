package memory

import (
	"context"
	"strings"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

type productRecord struct {
	product domain.Product
	seq     uint64
}

func (r productRecord) sortKey() (int64, uint64) { return r.product.CreatedAt.UnixNano(), r.seq }

type ProductRepository struct {
	s *Store
}

func cloneProduct(p domain.Product) *domain.Product {
	if p.ImageURL != nil {
		v := *p.ImageURL
		p.ImageURL = &v
	}
	return &p
}

func (r *ProductRepository) Create(_ context.Context, p *domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.products[p.ID] = productRecord{product: *cloneProduct(*p), seq: r.s.next()}
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(rec.product), nil
}

func (r *ProductRepository) Update(_ context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec.product.Apply(patch)
	r.s.products[id] = rec
	return cloneProduct(rec.product), nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepository) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, error) {
	search := strings.ToLower(f.Search)

	r.s.mu.RLock()
	recs := make([]productRecord, 0, len(r.s.products))
	for _, rec := range r.s.products {
		p := rec.product
		if f.AvailableOnly && !p.Available {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.FarmerID != "" && p.FarmerID != f.FarmerID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()

	newestFirst(recs)
	recs = limit(recs, f.Limit)
	out := make([]*domain.Product, len(recs))
	for i, rec := range recs {
		out[i] = cloneProduct(rec.product)
	}
	return out, nil
}

func (r *ProductRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), nil
}
