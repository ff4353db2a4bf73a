package branch

import (
	"errors"
	"net/http"
	"strconv"

	"coachbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/branches", h.ListBranches)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/branches", h.ListAllBranches)
	rg.POST("/branches", h.CreateBranch)
	rg.PUT("/branches/:id", h.UpdateBranch)
	rg.DELETE("/branches/:id", h.DeleteBranch)
}

func (h *Handler) ListBranches(c *gin.Context) {
	branches, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		h.renderError(c, err, "Failed to list branches")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"branches": branches})
}

func (h *Handler) ListAllBranches(c *gin.Context) {
	branches, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		h.renderError(c, err, "Failed to list branches")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"branches": branches})
}

func (h *Handler) CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err, "Failed to create branch")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"branch": b})
}

func (h *Handler) UpdateBranch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid branch ID")
		return
	}

	var req UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err, "Failed to update branch")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"branch": b})
}

func (h *Handler) DeleteBranch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid branch ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Failed to delete branch")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Branch not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
