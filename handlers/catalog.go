package handlers

import (
	"net/http"

	roomRepo "blueriver/database/repository/room"
	"blueriver/models"

	"github.com/gin-gonic/gin"
)

// ServiceLister lists the bookable amenities.
type ServiceLister interface {
	List() []models.ServiceOffering
}

// CatalogHandler serves the read-only room and service catalog.
type CatalogHandler struct {
	Rooms    roomRepo.RoomRepository
	Services ServiceLister
}

func NewCatalogHandler(rooms roomRepo.RoomRepository, services ServiceLister) *CatalogHandler {
	return &CatalogHandler{Rooms: rooms, Services: services}
}

// ListRoomsHandler handles GET /api/rooms?type=&q=&priceRange=.
// Filters run over the full (cached) catalog.
func (h *CatalogHandler) ListRoomsHandler(c *gin.Context) {
	band, err := roomRepo.ParsePriceBand(c.Query("priceRange"))
	if err != nil {
		handleError(c, "Invalid room filter", err)
		return
	}

	rooms, err := h.Rooms.GetAll(c.Request.Context())
	if err != nil {
		handleError(c, "Failed to fetch rooms", err)
		return
	}
	c.JSON(http.StatusOK, roomRepo.FilterRooms(rooms, models.RoomFilter{
		Type:       c.Query("type"),
		Query:      c.Query("q"),
		PriceRange: band,
	}))
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *CatalogHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, "Room not available", err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Services.List())
}
