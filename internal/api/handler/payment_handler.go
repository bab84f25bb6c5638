package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/farmlink/marketplace-api/internal/api/metrics"
	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type createPaymentRequest struct {
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Currency string  `json:"currency"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"   validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature"  validate:"required"`
}

type verifyPaymentResponse struct {
	Success bool `json:"success"`
}

// CreateOrder handles POST /api/payments/create-order.
//
// @Summary      Create a gateway payment order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Amount in major units"
// @Success      200   {object}  domain.PaymentOrder
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createPaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	po, err := h.service.CreateOrder(c.Request().Context(), actor, req.Amount, req.Currency)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, po)
}

// Verify handles POST /api/payments/verify.
//
// @Summary      Verify a checkout signature
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      verifyPaymentRequest  true  "Gateway callback fields"
// @Success      200   {object}  verifyPaymentResponse
// @Failure      400   {object}  errorResponse
// @Router       /payments/verify [post]
func (h *PaymentHandler) Verify(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req verifyPaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err = h.service.Verify(c.Request().Context(), actor, domain.PaymentConfirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	metrics.PaymentVerificationsTotal.WithLabelValues(paymentResult(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verifyPaymentResponse{Success: true})
}

func paymentResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isAny(err, domain.ErrPaymentVerification):
		return "mismatch"
	case isAny(err, domain.ErrPaymentReplay):
		return "replay"
	}
	return "error"
}
