package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/shared/pagination"
	"newsroom-backend/internal/shared/response"
)

type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(svc article.Service) *ArticleHandler {
	return &ArticleHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/articles?page&limit&search&author_id&region_id
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) GetAll(c *gin.Context) {
	p := pagination.ParseParams(c)

	f := article.ListFilter{
		Page:     p.Page,
		Limit:    p.Limit,
		Search:   p.Search,
		AuthorID: parseOptionalID(c, "author_id"),
		RegionID: parseOptionalID(c, "region_id"),
	}

	articles, total, err := h.service.GetAll(c.Request.Context(), f)
	if err != nil {
		if response.ValidationFailed(c, err) {
			return
		}
		response.Error(c, article.ToHTTPStatus(err), err.Error())
		return
	}

	response.List(c, article.ToResponses(articles), pagination.NewMeta(p.Page, p.Limit, total))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/articles/:id
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, article.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/articles
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Create(c *gin.Context) {
	var req article.SaveArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Request must be JSON")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if response.ValidationFailed(c, err) {
			return
		}
		response.Error(c, article.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/articles/:id
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req article.SaveArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Request must be JSON")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if response.ValidationFailed(c, err) {
			return
		}
		response.Error(c, article.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/articles/:id
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, article.ToHTTPStatus(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Article deleted successfully")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid article ID")
		return 0, false
	}
	return id, true
}

// parseOptionalID reads an optional integer query parameter; malformed
// values are treated as absent, matching the original behavior of
// ignoring unparseable filters.
func parseOptionalID(c *gin.Context, name string) *int64 {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
