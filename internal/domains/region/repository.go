package region

import (
	"context"

	"newsroom-backend/internal/shared/pagination"
)

// Repository defines data access for the Region domain.
type Repository interface {
	Create(ctx context.Context, r *Region) (*Region, error)

	// GetByID returns ErrRegionNotFound when absent.
	GetByID(ctx context.Context, id int64) (*Region, error)

	// GetAll returns one page of regions ordered by code, plus the
	// total count. Params.Search matches code or name.
	GetAll(ctx context.Context, p pagination.Params) ([]Region, int64, error)

	Update(ctx context.Context, r *Region) (*Region, error)

	// Delete returns ErrRegionHasLinks while articles reference the
	// region, ErrRegionNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// MissingIDs reports which of the given ids do not exist.
	// Used by the article domain to validate region_ids before a save.
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}
