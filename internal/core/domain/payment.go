package domain

// PaymentOrder is the gateway-side order a client pays against.
type PaymentOrder struct {
	GatewayOrderID string `json:"order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	KeyID          string `json:"key,omitempty"`
}

// PaymentConfirmation is what the client posts back after checkout.
type PaymentConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}
