package handlers

import (
	"fmt"
	"net/http"

	"blueriver/models"
	"blueriver/services/booking"
	"blueriver/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

type roomBookingRequest struct {
	RoomID   string `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

type serviceBookingRequest struct {
	ServiceID       string `json:"serviceId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

// CreateRoomBookingHandler handles POST /api/bookings/rooms.
func (h *BookingHandler) CreateRoomBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user")
		return
	}
	var req roomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), models.RoomStayDraft{
		UserID:   userID,
		RoomID:   req.RoomID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	})
	if err != nil {
		handleError(c, "Room booking failed", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CreateServiceBookingHandler handles POST /api/bookings/services.
func (h *BookingHandler) CreateServiceBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user")
		return
	}
	var req serviceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), models.ServiceDraft{
		UserID:          userID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		handleError(c, "Service booking failed", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user")
		return
	}
	bookings, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, "Failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, ok := h.ownedBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, b)
}

// EditBookingHandler handles PATCH /api/bookings/:id.
func (h *BookingHandler) EditBookingHandler(c *gin.Context) {
	existing, ok := h.ownedBooking(c)
	if !ok {
		return
	}
	var patch models.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	res, err := h.Svc.Edit(c.Request.Context(), existing.ID, patch)
	if err != nil {
		handleError(c, "Failed to update booking", err)
		return
	}
	if !res.Repriced && !patch.IsEmpty() {
		getLogger(c).Warn("Booking updated with unchanged price", zap.String("bookingID", existing.ID))
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":  res.Booking,
		"repriced": res.Repriced,
	})
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	existing, ok := h.ownedBooking(c)
	if !ok {
		return
	}
	if err := h.Svc.Cancel(c.Request.Context(), existing.ID); err != nil {
		handleError(c, "Failed to cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// ownedBooking loads the booking in the :id path parameter and checks that it
// belongs to the caller. Bookings owned by someone else are reported as missing.
func (h *BookingHandler) ownedBooking(c *gin.Context) (*models.Booking, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing user")
		return nil, false
	}
	id := c.Param("id")
	b, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, "Booking not available", err)
		return nil, false
	}
	if b.UserID != userID {
		handleError(c, "Booking not available", fmt.Errorf("booking %s: %w", id, models.ErrNotFound))
		return nil, false
	}
	return b, true
}
