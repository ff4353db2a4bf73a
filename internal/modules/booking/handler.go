package booking

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
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings", h.CreateBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func callerIdentity(c *gin.Context) Identity {
	return Identity{
		UserID: c.GetInt64("user_id"),
		Name:   c.GetString("user_name"),
		Role:   c.GetString("role"),
	}
}

func (h *Handler) ListBookings(c *gin.Context) {
	var date *string
	if v := c.Query("date"); v != "" {
		date = &v
	}
	var userID *int64
	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user_id")
			return
		}
		userID = &id
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), callerIdentity(c), date, userID)
	if err != nil {
		h.renderError(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), callerIdentity(c), req)
	if err != nil {
		h.renderError(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), callerIdentity(c), id); err != nil {
		h.renderError(c, err, "Failed to delete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrSlotConflict):
		response.Error(c, http.StatusConflict, "SLOT_CONFLICT", "Requested time is no longer available")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
