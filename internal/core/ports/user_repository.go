package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create inserts a user. A duplicate email yields domain.ErrDuplicateEmail.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Count returns the number of users holding role; an empty role counts everyone.
	Count(ctx context.Context, role domain.Role) (int64, error)
}
