package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"newsroom-backend/internal/shared/pagination"
)

// Article is the wire shape served by the articles endpoints, with the
// author and region set embedded.
type Article struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	AuthorID *int64   `json:"author_id"`
	Author   *Author  `json:"author"`
	Regions  []Region `json:"regions"`
}

// ArticleInput is the write payload. RegionIDs fully replaces the
// article's region set; a nil slice is sent as [], never null.
type ArticleInput struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	AuthorID  *int64  `json:"author_id"`
	RegionIDs []int64 `json:"region_ids"`
}

func (in ArticleInput) normalized() ArticleInput {
	if in.RegionIDs == nil {
		in.RegionIDs = []int64{}
	}
	return in
}

// ArticleListParams extends the standard list params with the author
// and region filters.
type ArticleListParams struct {
	ListParams
	AuthorID *int64
	RegionID *int64
}

type ArticlesClient struct {
	c *Client
}

func (a *ArticlesClient) List(ctx context.Context, p ArticleListParams) ([]Article, pagination.Meta, error) {
	q := p.ListParams.query()
	if p.AuthorID != nil {
		q.Set("author_id", strconv.FormatInt(*p.AuthorID, 10))
	}
	if p.RegionID != nil {
		q.Set("region_id", strconv.FormatInt(*p.RegionID, 10))
	}

	var out listEnvelope[Article]
	if err := a.c.do(ctx, http.MethodGet, "/articles", q, nil, &out); err != nil {
		return nil, pagination.Meta{}, err
	}
	return out.Data, out.Pagination, nil
}

func (a *ArticlesClient) Get(ctx context.Context, id int64) (*Article, error) {
	var out Article
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/articles/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Create(ctx context.Context, in ArticleInput) (*Article, error) {
	var out Article
	if err := a.c.do(ctx, http.MethodPost, "/articles", nil, in.normalized(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Update(ctx context.Context, id int64, in ArticleInput) (*Article, error) {
	var out Article
	if err := a.c.do(ctx, http.MethodPut, fmt.Sprintf("/articles/%d", id), nil, in.normalized(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ArticlesClient) Delete(ctx context.Context, id int64) (string, error) {
	var out messageEnvelope
	if err := a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/articles/%d", id), nil, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (a *ArticlesClient) Search(ctx context.Context, term string, p ArticleListParams) ([]Article, pagination.Meta, error) {
	p.Search = term
	return a.List(ctx, p)
}
