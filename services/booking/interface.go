package booking

import (
	"context"
	"time"

	bookingRepo "blueriver/database/repository/booking"
	roomRepo "blueriver/database/repository/room"
	"blueriver/models"

	"go.uber.org/zap"
)

// MaxGuests caps the party size for a service slot.
const MaxGuests = 10

// BookingService creates, lists, edits and cancels room and service bookings.
type BookingService interface {
	Create(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	List(ctx context.Context, userID string) ([]*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	Edit(ctx context.Context, id string, patch models.BookingPatch) (*EditResult, error)
	Cancel(ctx context.Context, id string) error
}

// ServiceCatalog looks up bookable amenities.
type ServiceCatalog interface {
	Get(id string) (*models.ServiceOffering, error)
}

// EditResult is the merged booking after an edit. Repriced is false when the
// per-unit rate could not be resolved and the total price was left as it was.
type EditResult struct {
	Booking  *models.Booking
	Repriced bool
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Catalog  ServiceCatalog
	Now      func() time.Time
	Location *time.Location
	Logger   *zap.Logger
}

func NewBookingService(
	repo bookingRepo.BookingRepository,
	rooms roomRepo.RoomRepository,
	catalog ServiceCatalog,
	loc *time.Location,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Rooms:    rooms,
		Catalog:  catalog,
		Now:      time.Now,
		Location: loc,
		Logger:   logger,
	}
}

// now returns the current time in the hotel's location.
func (s *DefaultBookingService) now() time.Time {
	clock := s.Now
	if clock == nil {
		clock = time.Now
	}
	return clock().In(s.location())
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
