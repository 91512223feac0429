package article

import "context"

// Repository defines data access for the Article domain.
type Repository interface {
	// GetAll returns one page of articles ordered by id with author and
	// regions loaded, plus the total count for the same filter.
	GetAll(ctx context.Context, f ListFilter) ([]Article, int64, error)

	// GetByID returns the article with relations loaded.
	// Errors: ErrArticleNotFound.
	GetByID(ctx context.Context, id int64) (*Article, error)

	// CreateWithRegions inserts the article and its association rows in
	// one transaction, then returns the reloaded article.
	CreateWithRegions(ctx context.Context, a *Article, regionIDs []int64) (*Article, error)

	// UpdateWithRegions updates the article and replaces its region set
	// in one transaction, then returns the reloaded article.
	// Errors: ErrArticleNotFound.
	UpdateWithRegions(ctx context.Context, a *Article, regionIDs []int64) (*Article, error)

	// Delete removes the article; association rows cascade.
	// Errors: ErrArticleNotFound.
	Delete(ctx context.Context, id int64) error

	// ExistsByID checks presence without loading the row.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
