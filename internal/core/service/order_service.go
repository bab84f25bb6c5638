package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/policy"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// OrderListCap bounds every order listing.
const OrderListCap = 1000

// Subjects published on the event broker.
const (
	SubjectOrderCreated       = "orders.created"
	SubjectOrderStatusChanged = "orders.status_changed"
)

// OrderOptions tunes OrderService behaviour.
type OrderOptions struct {
	// StrictTransitions enforces pending→confirmed→delivered and
	// pending→cancelled. When false any known status may be set.
	StrictTransitions bool
	// SingleSeller rejects carts whose products belong to different farmers.
	// When false the first item's farmer is the seller of record.
	SingleSeller bool
	// Mail receives buyer confirmations. Nil disables them.
	Mail ports.MailQueue
	// Events receives order events. Nil disables them.
	Events ports.EventPublisher
}

// OrderService validates and materializes multi-item orders.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	opts     OrderOptions
	log      zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	log zerolog.Logger,
	opts OrderOptions,
) *OrderService {
	return &OrderService{orders: orders, products: products, opts: opts, log: log}
}

type statusChangedEvent struct {
	OrderID string             `json:"order_id"`
	From    domain.OrderStatus `json:"from"`
	To      domain.OrderStatus `json:"to"`
	ActorID string             `json:"actor_id"`
	At      time.Time          `json:"at"`
}

// Create materializes an order from the buyer's items. Product lookups only
// validate existence and attribute the seller; prices and line totals are
// the caller's snapshot.
func (s *OrderService) Create(ctx context.Context, actor domain.Actor, in ports.CreateOrderInput) (*domain.Order, error) {
	if err := policy.Authorize(actor, policy.CreateOrder, policy.Resource{}); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	var seller *domain.Product
	for _, item := range in.Items {
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ProductNotFoundError{ProductID: item.ProductID}
			}
			return nil, fmt.Errorf("create order: resolve product: %w", err)
		}
		if seller == nil {
			seller = p
			continue
		}
		if s.opts.SingleSeller && p.FarmerID != seller.FarmerID {
			return nil, fmt.Errorf("%w: %s and %s", domain.ErrMixedSellers, seller.FarmerID, p.FarmerID)
		}
	}

	items := make([]domain.OrderItem, len(in.Items))
	copy(items, in.Items)

	order := &domain.Order{
		ID:              uuid.NewString(),
		BuyerID:         actor.ID,
		BuyerName:       actor.Name,
		BuyerEmail:      actor.Email,
		FarmerID:        seller.FarmerID,
		FarmerName:      seller.FarmerName,
		Items:           items,
		TotalAmount:     domain.SumTotals(items),
		Status:          domain.OrderPending,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("buyer_id", order.BuyerID).
		Str("farmer_id", order.FarmerID).
		Int("items", len(order.Items)).
		Msg("order created")

	s.publish(ctx, SubjectOrderCreated, order)
	s.sendConfirmation(order)
	return order, nil
}

// List returns the orders visible to actor.
func (s *OrderService) List(ctx context.Context, actor domain.Actor) ([]*domain.Order, error) {
	filter, err := policy.OrderScope(actor)
	if err != nil {
		return nil, err
	}
	filter.Limit = OrderListCap

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get returns one order if actor is an admin or one of its participants.
func (s *OrderService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := policy.Authorize(actor, policy.ReadOrder, policy.Owned(order.BuyerID, order.FarmerID)); err != nil {
		return nil, err
	}
	return order, nil
}

// SetStatus moves an order to status. Any farmer may update any order; the
// seller of record is not checked.
func (s *OrderService) SetStatus(ctx context.Context, actor domain.Actor, id, status string) error {
	if err := policy.Authorize(actor, policy.UpdateOrderStatus, policy.Resource{}); err != nil {
		return err
	}
	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return err
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("set order status: %w", err)
	}
	if s.opts.StrictTransitions && !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.orders.UpdateStatus(ctx, id, next); err != nil {
		return fmt.Errorf("set order status: %w", err)
	}

	s.log.Info().
		Str("order_id", id).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Str("actor_id", actor.ID).
		Msg("order status updated")

	s.publish(ctx, SubjectOrderStatusChanged, statusChangedEvent{
		OrderID: id,
		From:    order.Status,
		To:      next,
		ActorID: actor.ID,
		At:      time.Now().UTC(),
	})
	return nil
}

func (s *OrderService) publish(ctx context.Context, subject string, payload any) {
	if s.opts.Events == nil {
		return
	}
	if err := s.opts.Events.Publish(ctx, subject, payload); err != nil {
		s.log.Warn().Err(err).Str("subject", subject).Msg("failed to publish order event")
	}
}

func (s *OrderService) sendConfirmation(order *domain.Order) {
	if s.opts.Mail == nil || order.BuyerEmail == "" {
		return
	}
	body, err := renderOrderConfirmation(order)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID).Msg("failed to render order confirmation")
		return
	}
	if !s.opts.Mail.Enqueue(domain.MailMessage{
		To:      order.BuyerEmail,
		Subject: "Order confirmation " + order.ID,
		HTML:    body,
	}) {
		s.log.Warn().Str("order_id", order.ID).Msg("mail queue full, confirmation dropped")
	}
}
