package author

import (
	"context"

	"newsroom-backend/internal/shared/pagination"
)

// Repository defines data access for the Author domain.
type Repository interface {
	// Create inserts a new author and returns it with id and timestamps.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when absent.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns one page of authors ordered by id, plus the total
	// count for the same filter.
	GetAll(ctx context.Context, p pagination.Params) ([]Author, int64, error)

	// Update replaces the name fields and bumps updated_at.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author. Returns ErrAuthorHasArticles when a
	// foreign key still references it, ErrAuthorNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks presence without loading the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// CountArticles returns how many articles reference the author.
	CountArticles(ctx context.Context, id int64) (int, error)

	// GetAllWithArticleCount returns all authors with article counts.
	GetAllWithArticleCount(ctx context.Context) ([]AuthorWithCount, error)
}
