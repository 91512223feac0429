package author

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinNameLength = 2
	MaxNameLength = 100
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateAuthorRequest - PUT /v1/authors/:id
// Updates are a full replace of both name fields.
type UpdateAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Normalize trims whitespace from both fields.
func (r *CreateAuthorRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

func (r *CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, nameRules("First name")...),
		validation.Field(&r.LastName, nameRules("Last name")...),
	)
}

func (r *UpdateAuthorRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

func (r *UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, nameRules("First name")...),
		validation.Field(&r.LastName, nameRules("Last name")...),
	)
}

func nameRules(label string) []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(label + " is required"),
		validation.Length(MinNameLength, MaxNameLength).
			Error(label + " must be at least 2 characters"),
	}
}

// AuthorResponse is the wire shape for a single author.
type AuthorResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// AuthorWithStatsResponse adds the article count for /authors/with-stats.
type AuthorWithStatsResponse struct {
	AuthorResponse
	ArticleCount int `json:"article_count"`
}

// AuthorWithCount pairs an author with its article count.
type AuthorWithCount struct {
	Author
	ArticleCount int
}

// ToResponse converts the entity to its wire shape.
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
	}
}

func (a AuthorWithCount) ToResponse() AuthorWithStatsResponse {
	return AuthorWithStatsResponse{
		AuthorResponse: a.Author.ToResponse(),
		ArticleCount:   a.ArticleCount,
	}
}

// ToResponses maps a slice of entities, always returning a non-nil slice
// so empty lists serialize as [].
func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToResponse())
	}
	return out
}
