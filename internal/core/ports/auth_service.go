package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// RegisterInput carries a new account's details as received on the wire.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    *string
	Location *string
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService covers registration, login and session resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Authenticate validates a bearer token and resolves its subject.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	Profile(ctx context.Context, actor domain.Actor, userID string) (*domain.User, error)
}
