package schedule

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

// RegisterRoutes wires the unauthenticated reads: block and slot listing.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/blocks", h.ListBlocks)
	rg.GET("/slots", h.ListSlots)
}

// RegisterAdminRoutes wires the admin-only block commands.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/blocks", h.CreateBlocks)
	rg.DELETE("/blocks/:id", h.DeleteBlock)
}

func (h *Handler) ListBlocks(c *gin.Context) {
	date, branchID, ok := queryFilters(c)
	if !ok {
		return
	}

	blocks, err := h.service.ListBlocks(c.Request.Context(), date, branchID)
	if err != nil {
		h.renderError(c, err, "Failed to list blocks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocks": blocks})
}

func (h *Handler) CreateBlocks(c *gin.Context) {
	var req CreateBlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	blocks, err := h.service.CreateBlocks(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err, "Failed to create blocks")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"blocks": blocks})
}

func (h *Handler) DeleteBlock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid block ID")
		return
	}

	if err := h.service.DeleteBlock(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Failed to delete block")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListSlots(c *gin.Context) {
	date, branchID, ok := queryFilters(c)
	if !ok {
		return
	}
	if date == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date is required")
		return
	}

	slots, err := h.service.ListSlots(c.Request.Context(), *date, branchID)
	if err != nil {
		h.renderError(c, err, "Failed to list slots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Block not found")
	case errors.Is(err, ErrBlockInUse):
		response.Error(c, http.StatusConflict, "BLOCK_IN_USE", "Block has bookings; cancel them first")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func queryFilters(c *gin.Context) (date *string, branchID *int64, ok bool) {
	if v := c.Query("date"); v != "" {
		date = &v
	}
	if v := c.Query("branch_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid branch_id")
			return nil, nil, false
		}
		branchID = &id
	}
	return date, branchID, true
}
