package article

import (
	"time"

	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/domains/region"
)

// Article is the domain entity. AuthorID is optional ownership; the
// region set lives in the article_regions association table and is
// replaced wholesale on every save.
type Article struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	AuthorID  *int64    `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Loaded relations. Author is nil when the article has no author;
	// Regions is never nil, only empty.
	Author  *author.Author  `json:"author,omitempty"`
	Regions []region.Region `json:"regions"`
}
