package client

import (
	"context"
	"fmt"
	"net/http"

	"newsroom-backend/internal/shared/pagination"
)

// Author is the wire shape served by the authors endpoints.
type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// AuthorInput is the write payload for create and update.
type AuthorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthorsClient struct {
	c *Client
}

// List fetches one page of authors.
func (a *AuthorsClient) List(ctx context.Context, p ListParams) ([]Author, pagination.Meta, error) {
	var out listEnvelope[Author]
	if err := a.c.do(ctx, http.MethodGet, "/authors", p.query(), nil, &out); err != nil {
		return nil, pagination.Meta{}, err
	}
	return out.Data, out.Pagination, nil
}

// Get fetches a single author; a 404 surfaces as *apierror.APIError.
func (a *AuthorsClient) Get(ctx context.Context, id int64) (*Author, error) {
	var out Author
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/authors/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthorsClient) Create(ctx context.Context, in AuthorInput) (*Author, error) {
	var out Author
	if err := a.c.do(ctx, http.MethodPost, "/authors", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthorsClient) Update(ctx context.Context, id int64, in AuthorInput) (*Author, error) {
	var out Author
	if err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("/authors/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an author and returns the server's confirmation
// message. Deleting an author who has articles fails with a 409.
func (a *AuthorsClient) Delete(ctx context.Context, id int64) (string, error) {
	var out messageEnvelope
	if err := a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/authors/%d", id), nil, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Search is List with the term forwarded as the search parameter.
func (a *AuthorsClient) Search(ctx context.Context, term string, p ListParams) ([]Author, pagination.Meta, error) {
	p.Search = term
	return a.List(ctx, p)
}
