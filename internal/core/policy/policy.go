// Package policy decides whether an actor may perform an action on a
// resource. Every function here is pure: no store access, no clock.
package policy

import (
	"fmt"

	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

// Action names an operation subject to authorization.
type Action string

const (
	Register          Action = "register"
	Login             Action = "login"
	ReadProfile       Action = "read_profile"
	ListProducts      Action = "list_products"
	ReadProduct       Action = "read_product"
	CreateProduct     Action = "create_product"
	UpdateProduct     Action = "update_product"
	DeleteProduct     Action = "delete_product"
	ListOwnProducts   Action = "list_own_products"
	CreateOrder       Action = "create_order"
	ListOrders        Action = "list_orders"
	ReadOrder         Action = "read_order"
	UpdateOrderStatus Action = "update_order_status"
	ListUsers         Action = "list_users"
	ViewStats         Action = "view_stats"
	CreatePayment     Action = "create_payment"
	VerifyPayment     Action = "verify_payment"
	SubmitContact     Action = "submit_contact"
)

// Resource identifies who owns the target of an action. Owners is empty for
// actions that do not target a specific record.
type Resource struct {
	Owners []string
}

// Owned builds a Resource owned by the given user ids.
func Owned(ids ...string) Resource {
	return Resource{Owners: ids}
}

func (r Resource) ownedBy(id string) bool {
	if id == "" {
		return false
	}
	for _, o := range r.Owners {
		if o == id {
			return true
		}
	}
	return false
}

// Allow reports whether actor may perform action on res.
func Allow(actor domain.Actor, action Action, res Resource) bool {
	switch action {
	case Register, Login, ListProducts, ReadProduct, SubmitContact:
		return true
	case ReadProfile:
		return !actor.Anonymous() && res.ownedBy(actor.ID)
	case CreateProduct, ListOwnProducts:
		return actor.Is(domain.RoleFarmer)
	case UpdateProduct, DeleteProduct:
		return actor.Is(domain.RoleAdmin) || (actor.Is(domain.RoleFarmer) && res.ownedBy(actor.ID))
	case CreateOrder, CreatePayment, VerifyPayment:
		return actor.Is(domain.RoleBuyer)
	case ListOrders:
		return actor.Is(domain.RoleAdmin) || actor.Is(domain.RoleBuyer) || actor.Is(domain.RoleFarmer)
	case ReadOrder:
		return actor.Is(domain.RoleAdmin) || (!actor.Anonymous() && res.ownedBy(actor.ID))
	case UpdateOrderStatus:
		return actor.Is(domain.RoleAdmin) || actor.Is(domain.RoleFarmer)
	case ListUsers, ViewStats:
		return actor.Is(domain.RoleAdmin)
	}
	return false
}

// Authorize is Allow returning domain.ErrForbidden on denial.
func Authorize(actor domain.Actor, action Action, res Resource) error {
	if !Allow(actor, action, res) {
		return fmt.Errorf("%s: %w", action, domain.ErrForbidden)
	}
	return nil
}

// OrderScope narrows an order listing to what actor may see: admins see
// everything, buyers their purchases, farmers the orders they sell.
func OrderScope(actor domain.Actor) (ports.OrderFilter, error) {
	if err := Authorize(actor, ListOrders, Resource{}); err != nil {
		return ports.OrderFilter{}, err
	}
	switch actor.Role {
	case domain.RoleBuyer:
		return ports.OrderFilter{BuyerID: actor.ID}, nil
	case domain.RoleFarmer:
		return ports.OrderFilter{FarmerID: actor.ID}, nil
	}
	return ports.OrderFilter{}, nil
}
