package article

import "context"

// Service defines business logic operations for the Article domain.
type Service interface {
	// Create validates the payload, checks that the referenced author
	// and regions exist, and stores the article with its region set.
	Create(ctx context.Context, req *SaveArticleRequest) (*Article, error)

	// GetByID returns the article with author and regions loaded.
	// Errors: ErrArticleNotFound.
	GetByID(ctx context.Context, id int64) (*Article, error)

	// GetAll returns one page of articles with relations loaded, plus
	// the total count. Filtering by an unknown author or region id is
	// a validation error, not an empty result.
	GetAll(ctx context.Context, f ListFilter) ([]Article, int64, error)

	// Update replaces the article fields and its region set atomically.
	Update(ctx context.Context, id int64, req *SaveArticleRequest) (*Article, error)

	// Delete removes the article and its association rows.
	Delete(ctx context.Context, id int64) error

	// Search is GetAll with the term forwarded as the search filter.
	Search(ctx context.Context, term string, f ListFilter) ([]Article, int64, error)
}
