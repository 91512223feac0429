package pagination

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params are the normalized list-query parameters.
type Params struct {
	Page   int
	Limit  int
	Search string
}

// ParseParams extracts page/limit/search from the query string and
// normalizes them: page >= 1, 1 <= limit <= 100, search trimmed
// (blank search collapses to empty).
func ParseParams(c *gin.Context) Params {
	p := Params{
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	p.Search = strings.TrimSpace(c.Query("search"))

	return p
}

// Offset converts 1-based page/limit into a row offset.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes page position and navigability of a list response.
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
	NextPage    *int  `json:"next_page"`
	PrevPage    *int  `json:"prev_page"`
}

// NewMeta builds pagination metadata for the given page position.
// Invariants: has_next == (page < total_pages), has_prev == (page > 1).
func NewMeta(page, limit int, total int64) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	m := Meta{
		CurrentPage: page,
		PerPage:     limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}

	if m.HasNext {
		next := page + 1
		m.NextPage = &next
	}
	if m.HasPrev {
		prev := page - 1
		m.PrevPage = &prev
	}

	return m
}
