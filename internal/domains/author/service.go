package author

import (
	"context"

	"newsroom-backend/internal/shared/pagination"
)

// Service defines business logic operations for the Author domain.
type Service interface {
	// Create validates and stores a new author. Both name fields are
	// trimmed before validation; ozzo validation errors come back as-is
	// so handlers can surface field-level details.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns ErrAuthorNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns one page of authors plus the total row count.
	// Params.Search filters by first/last name, case-insensitive.
	GetAll(ctx context.Context, p pagination.Params) ([]Author, int64, error)

	// Update replaces both name fields.
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)

	// Delete refuses to remove an author who has written articles
	// (ErrAuthorHasArticles).
	Delete(ctx context.Context, id int64) error

	// Search is GetAll with the term forwarded as the search filter.
	Search(ctx context.Context, term string, p pagination.Params) ([]Author, int64, error)

	// GetAllWithArticleCount returns every author with its article count.
	GetAllWithArticleCount(ctx context.Context) ([]AuthorWithCount, error)
}
