package liststate

import (
	"context"

	"newsroom-backend/internal/shared/pagination"
	"newsroom-backend/pkg/client"
)

// Adapters binding the REST client to the Resource interface.

type authorResource struct {
	c *client.AuthorsClient
}

func (r authorResource) List(ctx context.Context, q Query) ([]client.Author, pagination.Meta, error) {
	return r.c.List(ctx, client.ListParams{Page: q.Page, Limit: q.Limit, Search: q.Search})
}

func (r authorResource) Get(ctx context.Context, id int64) (*client.Author, error) {
	return r.c.Get(ctx, id)
}

func (r authorResource) Create(ctx context.Context, in client.AuthorInput) (*client.Author, error) {
	return r.c.Create(ctx, in)
}

func (r authorResource) Update(ctx context.Context, id int64, in client.AuthorInput) (*client.Author, error) {
	return r.c.Update(ctx, id, in)
}

func (r authorResource) Delete(ctx context.Context, id int64) (string, error) {
	return r.c.Delete(ctx, id)
}

// ForAuthors builds a store over the authors endpoints.
func ForAuthors(c *client.Client) *Store[client.Author, client.AuthorInput] {
	return New[client.Author, client.AuthorInput](authorResource{c: c.Authors})
}

type articleResource struct {
	c *client.ArticlesClient
}

func (r articleResource) List(ctx context.Context, q Query) ([]client.Article, pagination.Meta, error) {
	return r.c.List(ctx, client.ArticleListParams{
		ListParams: client.ListParams{Page: q.Page, Limit: q.Limit, Search: q.Search},
	})
}

func (r articleResource) Get(ctx context.Context, id int64) (*client.Article, error) {
	return r.c.Get(ctx, id)
}

func (r articleResource) Create(ctx context.Context, in client.ArticleInput) (*client.Article, error) {
	return r.c.Create(ctx, in)
}

func (r articleResource) Update(ctx context.Context, id int64, in client.ArticleInput) (*client.Article, error) {
	return r.c.Update(ctx, id, in)
}

func (r articleResource) Delete(ctx context.Context, id int64) (string, error) {
	return r.c.Delete(ctx, id)
}

// ForArticles builds a store over the articles endpoints.
func ForArticles(c *client.Client) *Store[client.Article, client.ArticleInput] {
	return New[client.Article, client.ArticleInput](articleResource{c: c.Articles})
}

type regionResource struct {
	c *client.RegionsClient
}

func (r regionResource) List(ctx context.Context, q Query) ([]client.Region, pagination.Meta, error) {
	return r.c.List(ctx, client.ListParams{Page: q.Page, Limit: q.Limit, Search: q.Search})
}

func (r regionResource) Get(ctx context.Context, id int64) (*client.Region, error) {
	return r.c.Get(ctx, id)
}

func (r regionResource) Create(ctx context.Context, in client.RegionInput) (*client.Region, error) {
	return r.c.Create(ctx, in)
}

func (r regionResource) Update(ctx context.Context, id int64, in client.RegionInput) (*client.Region, error) {
	return r.c.Update(ctx, id, in)
}

func (r regionResource) Delete(ctx context.Context, id int64) (string, error) {
	return r.c.Delete(ctx, id)
}

// ForRegions builds a store over the regions endpoints.
func ForRegions(c *client.Client) *Store[client.Region, client.RegionInput] {
	return New[client.Region, client.RegionInput](regionResource{c: c.Regions})
}
