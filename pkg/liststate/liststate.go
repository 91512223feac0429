// Package liststate keeps one resource's list view in sync with the
// API: current page of items, pagination meta, loading flag, and the
// last error as a display string. Mutations re-fetch the remembered
// query so the list always reflects the server.
package liststate

import (
	"context"
	"strings"
	"sync"

	"newsroom-backend/internal/shared/pagination"
	"newsroom-backend/pkg/apierror"
)

// Query is the list query a store remembers between fetches.
type Query struct {
	Page   int
	Limit  int
	Search string
}

// Resource is the API surface a store drives. T is the entity, In the
// write payload.
type Resource[T any, In any] interface {
	List(ctx context.Context, q Query) ([]T, pagination.Meta, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id int64, in In) (*T, error)
	Delete(ctx context.Context, id int64) (string, error)
}

// Store tracks one resource list. Safe for concurrent use; overlapping
// fetches are sequenced so only the latest response lands.
type Store[T any, In any] struct {
	res Resource[T, In]

	mu      sync.Mutex
	items   []T
	meta    pagination.Meta
	query   Query
	loading bool
	errMsg  string
	seq     uint64
}

func New[T any, In any](res Resource[T, In]) *Store[T, In] {
	return &Store[T, In]{res: res}
}

// Fetch loads the given query and replaces the store's contents. On
// failure the previous items stay and the error message is set. A fetch
// that is overtaken by a newer one discards its response.
func (s *Store[T, In]) Fetch(ctx context.Context, q Query) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.seq++
	token := s.seq
	s.mu.Unlock()

	items, meta, err := s.res.List(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		// A newer fetch took over; drop this response.
		return err
	}
	s.loading = false
	if err != nil {
		s.errMsg = apierror.Format(err, "Failed to load data")
		return err
	}
	s.items = items
	s.meta = meta
	s.query = q
	return nil
}

// Refresh re-runs the remembered query.
func (s *Store[T, In]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	q := s.query
	s.mu.Unlock()
	return s.Fetch(ctx, q)
}

// SearchBy resets to page 1 with the trimmed term and fetches.
func (s *Store[T, In]) SearchBy(ctx context.Context, term string) error {
	s.mu.Lock()
	q := s.query
	s.mu.Unlock()

	q.Page = 1
	q.Search = strings.TrimSpace(term)
	return s.Fetch(ctx, q)
}

// GetByID fetches one entity without touching the list state.
func (s *Store[T, In]) GetByID(ctx context.Context, id int64) (*T, error) {
	item, err := s.res.Get(ctx, id)
	if err != nil {
		s.mu.Lock()
		s.errMsg = apierror.Format(err, "Failed to load data")
		s.mu.Unlock()
		return nil, err
	}
	return item, nil
}

// Create saves a new entity and re-fetches the remembered query.
func (s *Store[T, In]) Create(ctx context.Context, in In) (*T, error) {
	item, err := s.res.Create(ctx, in)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	return item, s.Refresh(ctx)
}

// Update saves an entity and re-fetches the remembered query.
func (s *Store[T, In]) Update(ctx context.Context, id int64, in In) (*T, error) {
	item, err := s.res.Update(ctx, id, in)
	if err != nil {
		s.setErr(err)
		return nil, err
	}
	return item, s.Refresh(ctx)
}

// Delete removes an entity and re-fetches. Deleting the only row of a
// page past the first steps back one page so the view never lands on
// an empty page.
func (s *Store[T, In]) Delete(ctx context.Context, id int64) error {
	if _, err := s.res.Delete(ctx, id); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	q := s.query
	if len(s.items) == 1 && s.meta.CurrentPage > 1 {
		q.Page = s.meta.CurrentPage - 1
	}
	s.mu.Unlock()

	return s.Fetch(ctx, q)
}

func (s *Store[T, In]) setErr(err error) {
	s.mu.Lock()
	s.errMsg = apierror.Format(err, "Operation failed")
	s.mu.Unlock()
}

// Items returns a copy of the current page.
func (s *Store[T, In]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T, In]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last error message, empty when the last operation
// succeeded.
func (s *Store[T, In]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store[T, In]) Pagination() pagination.Meta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

func (s *Store[T, In]) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}
