package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Health
	HealthHandler gin.HandlerFunc

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc

	// Catalog endpoints
	ListRoomsHandler    gin.HandlerFunc
	GetRoomHandler      gin.HandlerFunc
	ListServicesHandler gin.HandlerFunc

	// Booking endpoints
	CreateRoomBookingHandler    gin.HandlerFunc
	CreateServiceBookingHandler gin.HandlerFunc
	ListBookingsHandler         gin.HandlerFunc
	GetBookingHandler           gin.HandlerFunc
	EditBookingHandler          gin.HandlerFunc
	CancelBookingHandler        gin.HandlerFunc
}
