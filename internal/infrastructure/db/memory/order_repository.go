package memory

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

type orderRecord struct {
	order domain.Order
	seq   uint64
}

func (r orderRecord) sortKey() (int64, uint64) { return r.order.CreatedAt.UnixNano(), r.seq }

type OrderRepository struct {
	s *Store
}

func cloneOrder(o domain.Order) *domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return &o
}

func (r *OrderRepository) Create(_ context.Context, o *domain.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.orders[o.ID] = orderRecord{order: *cloneOrder(*o), seq: r.s.next()}
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(rec.order), nil
}

func (r *OrderRepository) List(_ context.Context, f ports.OrderFilter) ([]*domain.Order, error) {
	r.s.mu.RLock()
	recs := make([]orderRecord, 0, len(r.s.orders))
	for _, rec := range r.s.orders {
		if f.BuyerID != "" && rec.order.BuyerID != f.BuyerID {
			continue
		}
		if f.FarmerID != "" && rec.order.FarmerID != f.FarmerID {
			continue
		}
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()

	newestFirst(recs)
	recs = limit(recs, f.Limit)
	out := make([]*domain.Order, len(recs))
	for i, rec := range recs {
		out[i] = cloneOrder(rec.order)
	}
	return out, nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.order.Status = status
	r.s.orders[id] = rec
	return nil
}

func (r *OrderRepository) Count(_ context.Context, status domain.OrderStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, rec := range r.s.orders {
		if status == "" || rec.order.Status == status {
			n++
		}
	}
	return n, nil
}
