package bookingRepo

import (
	"context"

	"blueriver/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create stores a new booking, assigns its ID and returns it.
	Create(ctx context.Context, booking *models.Booking) (string, error)
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByUserID retrieves all bookings owned by a user.
	GetByUserID(ctx context.Context, userID string) ([]*models.Booking, error)
	// Update applies a partial update and returns the merged record.
	Update(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
	// Delete removes a booking by its ID.
	Delete(ctx context.Context, id string) error
}
