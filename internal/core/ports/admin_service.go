package ports

import (
	"context"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

// AdminService exposes read-only rollups over stored state.
type AdminService interface {
	ListUsers(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
	Stats(ctx context.Context, actor domain.Actor) (*domain.Stats, error)
}
