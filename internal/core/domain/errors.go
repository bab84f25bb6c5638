package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	// Token failures collapse to a single 401 outward.
	ErrExpiredToken   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
	ErrUnknownSubject = errors.New("token subject no longer exists")

	ErrForbidden = errors.New("access forbidden")
	ErrNotFound  = errors.New("not found")

	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrProductNotFound   = errors.New("product not found")
	ErrMixedSellers      = errors.New("order items belong to more than one farmer")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrPaymentVerification = errors.New("payment verification failed")
	ErrPaymentReplay       = errors.New("payment already verified")
)

// ProductNotFoundError names the product id an order referenced that does not
// resolve. It matches ErrProductNotFound with errors.Is.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// IsTokenError reports whether err is one of the session token failures.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrUnknownSubject)
}
