package article

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/domains/region"
)

const (
	MinTitleLength   = 5
	MaxTitleLength   = 500
	MinContentLength = 10
)

// SaveArticleRequest is the body of both POST /v1/articles and
// PUT /v1/articles/:id. RegionIDs is a full replacement of the
// article's region set; a missing field means "no regions".
type SaveArticleRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	AuthorID  *int64  `json:"author_id"`
	RegionIDs []int64 `json:"region_ids"`
}

// Normalize trims text fields and collapses nil region ids to an
// empty set so downstream code never sees null.
func (r *SaveArticleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	if r.RegionIDs == nil {
		r.RegionIDs = []int64{}
	}
}

func (r *SaveArticleRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("Title is required"),
			validation.Length(MinTitleLength, MaxTitleLength).
				Error("Title must be at least 5 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("Content is required"),
			validation.Length(MinContentLength, 0).
				Error("Content must be at least 10 characters"),
		),
	)
}

// ArticleResponse embeds the author and region set the way list and
// detail endpoints serve them.
type ArticleResponse struct {
	ID       int64                   `json:"id"`
	Title    string                  `json:"title"`
	Content  string                  `json:"content"`
	AuthorID *int64                  `json:"author_id"`
	Author   *author.AuthorResponse  `json:"author"`
	Regions  []region.RegionResponse `json:"regions"`
}

func (a Article) ToResponse() ArticleResponse {
	resp := ArticleResponse{
		ID:       a.ID,
		Title:    a.Title,
		Content:  a.Content,
		AuthorID: a.AuthorID,
		Regions:  region.ToResponses(a.Regions),
	}

	if a.Author != nil {
		ar := a.Author.ToResponse()
		resp.Author = &ar
	}

	return resp
}

func ToResponses(articles []Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ToResponse())
	}
	return out
}

// ListFilter carries the article list query: pagination/search plus the
// optional author and region filters.
type ListFilter struct {
	Page     int
	Limit    int
	Search   string
	AuthorID *int64
	RegionID *int64
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
