// Package client is a typed REST client for the newsroom API. One
// sub-client per resource wraps the collection endpoints; all state
// (caching, pagination bookkeeping) lives in callers, not here.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newsroom-backend/internal/shared/pagination"
	"newsroom-backend/pkg/apierror"
)

const defaultTimeout = 30 * time.Second

// Client bundles the per-resource clients over one HTTP transport.
type Client struct {
	baseURL    string
	httpClient *http.Client

	Authors  *AuthorsClient
	Articles *ArticlesClient
	Regions  *RegionsClient
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport, e.g. for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// New builds a client rooted at baseURL (e.g. "http://localhost:8080/api/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Authors = &AuthorsClient{c: c}
	c.Articles = &ArticlesClient{c: c}
	c.Regions = &RegionsClient{c: c}
	return c
}

// ListParams are the standard list-query parameters. Zero values are
// omitted from the request; Search is trimmed and dropped when blank.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		q.Set("search", s)
	}
	return q
}

// listEnvelope is the standard collection response.
type listEnvelope[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// messageEnvelope is the action confirmation response.
type messageEnvelope struct {
	Message string `json:"message"`
}

// do performs one request. Failure responses become *apierror.APIError;
// transport failures are wrapped and carry no status code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return apierror.Decode(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
