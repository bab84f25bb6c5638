package service

import (
	"context"
	"fmt"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/policy"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// AdminService computes read-only rollups for administrators.
type AdminService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
}

func NewAdminService(users ports.UserRepository, products ports.ProductRepository, orders ports.OrderRepository) *AdminService {
	return &AdminService{users: users, products: products, orders: orders}
}

func (s *AdminService) ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	if err := policy.Authorize(actor, policy.ListUsers, policy.Resource{}); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *AdminService) Stats(ctx context.Context, actor domain.Actor) (*domain.Stats, error) {
	if err := policy.Authorize(actor, policy.ViewStats, policy.Resource{}); err != nil {
		return nil, err
	}

	var (
		st  domain.Stats
		err error
	)
	if st.TotalUsers, err = s.users.Count(ctx, ""); err != nil {
		return nil, fmt.Errorf("stats: users: %w", err)
	}
	if st.TotalFarmers, err = s.users.Count(ctx, domain.RoleFarmer); err != nil {
		return nil, fmt.Errorf("stats: farmers: %w", err)
	}
	if st.TotalBuyers, err = s.users.Count(ctx, domain.RoleBuyer); err != nil {
		return nil, fmt.Errorf("stats: buyers: %w", err)
	}
	if st.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, fmt.Errorf("stats: products: %w", err)
	}
	if st.TotalOrders, err = s.orders.Count(ctx, ""); err != nil {
		return nil, fmt.Errorf("stats: orders: %w", err)
	}
	if st.PendingOrders, err = s.orders.Count(ctx, domain.OrderPending); err != nil {
		return nil, fmt.Errorf("stats: pending orders: %w", err)
	}
	return &st, nil
}
