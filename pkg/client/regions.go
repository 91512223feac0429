package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"newsroom-backend/internal/shared/pagination"
)

// Region is the wire shape served by the regions endpoints.
type Region struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegionInput is the write payload for create and update.
type RegionInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type RegionsClient struct {
	c *Client
}

// List fetches one page of regions. The endpoint historically served
// either a bare array or the {data, pagination} envelope; both decode.
func (r *RegionsClient) List(ctx context.Context, p ListParams) ([]Region, pagination.Meta, error) {
	var raw json.RawMessage
	if err := r.c.do(ctx, http.MethodGet, "/regions", p.query(), nil, &raw); err != nil {
		return nil, pagination.Meta{}, err
	}

	if len(raw) > 0 && raw[0] == '[' {
		var regions []Region
		if err := json.Unmarshal(raw, &regions); err != nil {
			return nil, pagination.Meta{}, fmt.Errorf("failed to decode region list: %w", err)
		}
		meta := pagination.NewMeta(1, len(regions), int64(len(regions)))
		return regions, meta, nil
	}

	var out listEnvelope[Region]
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("failed to decode region list: %w", err)
	}
	return out.Data, out.Pagination, nil
}

func (r *RegionsClient) Get(ctx context.Context, id int64) (*Region, error) {
	var out Region
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/regions/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RegionsClient) Create(ctx context.Context, in RegionInput) (*Region, error) {
	var out Region
	if err := r.c.do(ctx, http.MethodPost, "/regions", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RegionsClient) Update(ctx context.Context, id int64, in RegionInput) (*Region, error) {
	var out Region
	if err := r.c.do(ctx, http.MethodPut, fmt.Sprintf("/regions/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RegionsClient) Delete(ctx context.Context, id int64) (string, error) {
	var out messageEnvelope
	if err := r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/regions/%d", id), nil, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (r *RegionsClient) Search(ctx context.Context, term string, p ListParams) ([]Region, pagination.Meta, error) {
	p.Search = term
	return r.List(ctx, p)
}
