package roomRepo

import (
	"context"

	"blueriver/models"
)

// RoomRepository is read-only access to the room catalog.
type RoomRepository interface {
	// GetAll retrieves every room.
	GetAll(ctx context.Context) ([]models.Room, error)
	// GetByID retrieves a room by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Room, error)
}
