package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of actor roles. Wire strings are converted with
// ParseRole at the edges; nothing inside the core compares raw strings.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
	RoleAdmin  Role = "admin"
)

// ParseRole converts a wire value into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleAdmin:
		return true
	}
	return false
}

// User models a registered account. Name and email are copied onto products
// and orders at write time; later changes are not propagated.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Phone        *string   `json:"phone"`
	Location     *string   `json:"location"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor returns the principal view of u used by the authorization policy.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email}
}
