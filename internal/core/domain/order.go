package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderDelivered},
}

// ParseOrderStatus converts a wire value into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
}

// CanTransitionTo reports whether moving from s to next follows the order
// state machine.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a snapshot of one line taken at order creation. Price and
// total are the caller's figures and are not recomputed from the catalog.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	Unit        string  `json:"unit" bson:"unit"`
	Price       float64 `json:"price" bson:"price"`
	Total       float64 `json:"total" bson:"total"`
}

// Order is the aggregate created when a buyer checks out.
type Order struct {
	ID              string      `json:"id" bson:"_id"`
	BuyerID         string      `json:"buyer_id" bson:"buyer_id"`
	BuyerName       string      `json:"buyer_name" bson:"buyer_name"`
	BuyerEmail      string      `json:"buyer_email" bson:"buyer_email"`
	FarmerID        string      `json:"farmer_id" bson:"farmer_id"`
	FarmerName      string      `json:"farmer_name" bson:"farmer_name"`
	Items           []OrderItem `json:"items" bson:"items"`
	TotalAmount     float64     `json:"total_amount" bson:"total_amount"`
	Status          OrderStatus `json:"status" bson:"status"`
	DeliveryAddress string      `json:"delivery_address" bson:"delivery_address"`
	PaymentMethod   string      `json:"payment_method" bson:"payment_method"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
}

// HasParticipant reports whether userID is the buyer or the seller of o.
func (o *Order) HasParticipant(userID string) bool {
	return userID != "" && (o.BuyerID == userID || o.FarmerID == userID)
}

// SumTotals adds the supplied line totals in decimal so the result is the
// exact sum of the inputs rather than an accumulated float error.
func SumTotals(items []OrderItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Total))
	}
	return sum.InexactFloat64()
}
