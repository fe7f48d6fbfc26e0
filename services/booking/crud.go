package booking

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"blueriver/models"

	"go.uber.org/zap"
)

// List returns the user's bookings, most recent first.
func (s *DefaultBookingService) List(ctx context.Context, userID string) ([]*models.Booking, error) {
	all, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	bookings := make([]*models.Booking, 0, len(all))
	for _, b := range all {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	SortByRecency(bookings)
	return bookings, nil
}

// SortByRecency orders bookings newest first. Bookings with a creation time
// come before those without; ties and untimestamped bookings fall back to the
// higher ID first.
func SortByRecency(bookings []*models.Booking) {
	slices.SortStableFunc(bookings, func(a, b *models.Booking) int {
		aSet, bSet := !a.CreatedAt.IsZero(), !b.CreatedAt.IsZero()
		switch {
		case aSet && !bSet:
			return -1
		case !aSet && bSet:
			return 1
		case aSet && bSet && !a.CreatedAt.Equal(b.CreatedAt):
			return b.CreatedAt.Compare(a.CreatedAt)
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// Get returns a single booking.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// Cancel removes the booking. Missing bookings fail with models.ErrNotFound.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	s.logger().Info("booking cancelled", zap.String("booking_id", id))
	return nil
}
