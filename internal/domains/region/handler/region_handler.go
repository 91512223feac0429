package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/region"
	"newsroom-backend/internal/shared/pagination"
	"newsroom-backend/internal/shared/response"
)

type RegionHandler struct {
	service region.Service
}

func NewRegionHandler(svc region.Service) *RegionHandler {
	return &RegionHandler{service: svc}
}

func (h *RegionHandler) GetAll(c *gin.Context) {
	p := pagination.ParseParams(c)

	regions, total, err := h.service.GetAll(c.Request.Context(), p)
	if err != nil {
		response.Error(c, region.ToHTTPStatus(err), err.Error())
		return
	}

	response.List(c, region.ToResponses(regions), pagination.NewMeta(p.Page, p.Limit, total))
}

func (h *RegionHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rg, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, region.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, rg.ToResponse())
}

func (h *RegionHandler) Create(c *gin.Context) {
	var req region.CreateRegionRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Request must be JSON")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if response.ValidationFailed(c, err) {
			return
		}
		response.Error(c, region.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, created.ToResponse())
}

func (h *RegionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req region.UpdateRegionRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Request must be JSON")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if response.ValidationFailed(c, err) {
			return
		}
		response.Error(c, region.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, updated.ToResponse())
}

func (h *RegionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, region.ToHTTPStatus(err), err.Error())
		return
	}

	response.Message(c, http.StatusOK, "Region deleted successfully")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid region ID")
		return 0, false
	}
	return id, true
}
