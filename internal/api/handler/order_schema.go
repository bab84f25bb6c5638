package handler

import (
	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

type orderItemRequest struct {
	ProductID   string  `json:"product_id"   validate:"required"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// createOrderRequest leaves items unconstrained in length so an empty cart
// reaches the service and is reported as an empty order.
type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"            validate:"dive"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	PaymentMethod   string             `json:"payment_method"   validate:"required"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (r createOrderRequest) toInput() ports.CreateOrderInput {
	items := make([]domain.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Price:       it.Price,
			Total:       it.Total,
		}
	}
	return ports.CreateOrderInput{
		Items:           items,
		DeliveryAddress: r.DeliveryAddress,
		PaymentMethod:   r.PaymentMethod,
	}
}
