package region

import (
	"context"

	"newsroom-backend/internal/shared/pagination"
)

// Service defines business logic operations for the Region domain.
// Regions are reference data: reads dominate, so the repository keeps
// a cache that mutations invalidate.
type Service interface {
	Create(ctx context.Context, req *CreateRegionRequest) (*Region, error)
	GetByID(ctx context.Context, id int64) (*Region, error)
	GetAll(ctx context.Context, p pagination.Params) ([]Region, int64, error)
	Update(ctx context.Context, id int64, req *UpdateRegionRequest) (*Region, error)
	Delete(ctx context.Context, id int64) error
}
