package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/author"
	"newsroom-backend/internal/shared/pagination"
	"newsroom-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /v1/authors?page&limit&search
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	p := pagination.ParseParams(c)

	authors, total, err := h.service.GetAll(c.Request.Context(), p)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.List(c, author.ToResponses(authors), pagination.NewMeta(p.Page, p.Limit, total))
}

// ════════════════════════════════════════════════════════════════
// READ: GET /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Request must be JSON")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if response.ValidationFailed(c, err) {
			return
		}
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Request must be JSON")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if response.ValidationFailed(c, err) {
			return
		}
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Author deleted successfully")
}

// ════════════════════════════════════════════════════════════════
// STATS: GET /v1/authors/with-stats
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAllWithStats(c *gin.Context) {
	authors, err := h.service.GetAllWithArticleCount(c.Request.Context())
	if err != nil {
		response.Error(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	out := make([]author.AuthorWithStatsResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return 0, false
	}
	return id, true
}
