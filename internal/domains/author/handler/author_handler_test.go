package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/shared/pagination"
)

// fakeAuthorService drives the handler without a database.
type fakeAuthorService struct {
	authors map[int64]author.Author
	nextID  int64
	blocked map[int64]bool // ids whose delete is refused
}

func newFakeAuthorService() *fakeAuthorService {
	return &fakeAuthorService{
		authors: make(map[int64]author.Author),
		nextID:  1,
		blocked: make(map[int64]bool),
	}
}

func (s *fakeAuthorService) Create(_ context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	a := author.Author{ID: s.nextID, FirstName: req.FirstName, LastName: req.LastName}
	s.nextID++
	s.authors[a.ID] = a
	return &a, nil
}

func (s *fakeAuthorService) GetByID(_ context.Context, id int64) (*author.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (s *fakeAuthorService) GetAll(_ context.Context, _ pagination.Params) ([]author.Author, int64, error) {
	out := make([]author.Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (s *fakeAuthorService) Update(_ context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.authors[id]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	a := author.Author{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	s.authors[id] = a
	return &a, nil
}

func (s *fakeAuthorService) Delete(_ context.Context, id int64) error {
	if s.blocked[id] {
		return author.ErrAuthorHasArticles
	}
	if _, ok := s.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(s.authors, id)
	return nil
}

func (s *fakeAuthorService) Search(ctx context.Context, _ string, p pagination.Params) ([]author.Author, int64, error) {
	return s.GetAll(ctx, p)
}

func (s *fakeAuthorService) GetAllWithArticleCount(_ context.Context) ([]author.AuthorWithCount, error) {
	out := make([]author.AuthorWithCount, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, author.AuthorWithCount{Author: a, ArticleCount: 2})
	}
	return out, nil
}

func setupRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)
	r := gin.New()
	r.GET("/authors", h.GetAll)
	r.GET("/authors/with-stats", h.GetAllWithStats)
	r.GET("/authors/:id", h.GetByID)
	r.POST("/authors", h.Create)
	r.PUT("/authors/:id", h.Update)
	r.DELETE("/authors/:id", h.Delete)
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAuthor(t *testing.T) {
	r := setupRouter(newFakeAuthorService())

	w := perform(r, http.MethodPost, "/authors", `{"first_name": "  Jane ", "last_name": "Doe"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane", got["first_name"])
	assert.Equal(t, "Jane Doe", got["full_name"])
}

func TestCreateAuthorValidationDetails(t *testing.T) {
	r := setupRouter(newFakeAuthorService())

	w := perform(r, http.MethodPost, "/authors", `{"first_name": "", "last_name": "D"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var got struct {
		Error   string `json:"error"`
		Details []struct {
			Field string `json:"field"`
			Msg   string `json:"msg"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Validation failed", got.Error)
	require.Len(t, got.Details, 2)
	assert.Equal(t, "first_name", got.Details[0].Field)
	assert.Equal(t, "First name is required", got.Details[0].Msg)
	assert.Equal(t, "last_name", got.Details[1].Field)
	assert.Equal(t, "Last name must be at least 2 characters", got.Details[1].Msg)
}

func TestCreateAuthorRejectsNonJSON(t *testing.T) {
	r := setupRouter(newFakeAuthorService())

	w := perform(r, http.MethodPost, "/authors", `not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Request must be JSON")
}

func TestGetAuthorNotFound(t *testing.T) {
	r := setupRouter(newFakeAuthorService())

	w := perform(r, http.MethodGet, "/authors/42", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Author not found", got["error"])
}

func TestGetAuthorInvalidID(t *testing.T) {
	r := setupRouter(newFakeAuthorService())

	w := perform(r, http.MethodGet, "/authors/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid author ID")
}

func TestListAuthorsEnvelope(t *testing.T) {
	svc := newFakeAuthorService()
	svc.authors[1] = author.Author{ID: 1, FirstName: "Jane", LastName: "Doe"}
	r := setupRouter(svc)

	w := perform(r, http.MethodGet, "/authors?page=1&limit=20", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Data       []author.AuthorResponse `json:"data"`
		Pagination pagination.Meta         `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, "Jane Doe", got.Data[0].FullName)
	assert.Equal(t, 1, got.Pagination.CurrentPage)
	assert.Equal(t, int64(1), got.Pagination.TotalItems)
}

func TestListAuthorsEmptyIsArray(t *testing.T) {
	r := setupRouter(newFakeAuthorService())

	w := perform(r, http.MethodGet, "/authors", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestUpdateAuthor(t *testing.T) {
	svc := newFakeAuthorService()
	svc.authors[1] = author.Author{ID: 1, FirstName: "Jane", LastName: "Doe"}
	r := setupRouter(svc)

	w := perform(r, http.MethodPut, "/authors/1", `{"first_name": "Janet", "last_name": "Doe"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Janet")
}

func TestDeleteAuthor(t *testing.T) {
	svc := newFakeAuthorService()
	svc.authors[1] = author.Author{ID: 1, FirstName: "Jane", LastName: "Doe"}
	r := setupRouter(svc)

	w := perform(r, http.MethodDelete, "/authors/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Author deleted successfully", got["message"])
}

func TestDeleteAuthorWithArticles(t *testing.T) {
	svc := newFakeAuthorService()
	svc.authors[1] = author.Author{ID: 1, FirstName: "Jane", LastName: "Doe"}
	svc.blocked[1] = true
	r := setupRouter(svc)

	w := perform(r, http.MethodDelete, "/authors/1", "")

	require.Equal(t, http.StatusConflict, w.Code)
	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Cannot delete author who has written articles", got["error"])
}

func TestAuthorsWithStats(t *testing.T) {
	svc := newFakeAuthorService()
	svc.authors[1] = author.Author{ID: 1, FirstName: "Jane", LastName: "Doe"}
	r := setupRouter(svc)

	w := perform(r, http.MethodGet, "/authors/with-stats", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Data []author.AuthorWithStatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, 2, got.Data[0].ArticleCount)
}
