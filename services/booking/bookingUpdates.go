package booking

import (
	"context"
	"fmt"

	"blueriver/models"

	"go.uber.org/zap"
)

// Edit applies a partial change to a booking and recomputes its total price from
// the per-unit rate of the stored booking. Only fields present in patch are
// written. Validation failures leave the store untouched.
func (s *DefaultBookingService) Edit(ctx context.Context, id string, patch models.BookingPatch) (*EditResult, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if patch.IsEmpty() {
		return &EditResult{Booking: current}, nil
	}

	update := models.BookingUpdate{BookingPatch: patch}
	var rate Rate
	switch d := current.Details.(type) {
	case *models.RoomStay:
		rate, update.TotalPrice, err = s.repriceRoomStay(current, d, patch)
	case *models.ServiceSlot:
		rate, update.TotalPrice, err = s.repriceServiceSlot(current, d, patch)
	default:
		err = fmt.Errorf("%w: booking %s has no details", models.ErrValidation, id)
	}
	if err != nil {
		s.logger().Warn("booking edit rejected", zap.String("booking_id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.Repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	repriced := update.TotalPrice != nil
	if !repriced {
		s.logger().Warn("booking edited without repricing, rate unresolvable",
			zap.String("booking_id", id),
			zap.String("kind", string(current.Kind())),
		)
	}
	perUnit, _ := rate.Value()
	s.logger().Info("booking edited",
		zap.String("booking_id", id),
		zap.Bool("repriced", repriced),
		zap.Float64("rate", perUnit),
		zap.Float64("total_price", updated.TotalPrice),
	)
	return &EditResult{Booking: updated, Repriced: repriced}, nil
}

func (s *DefaultBookingService) repriceRoomStay(current *models.Booking, stay *models.RoomStay, patch models.BookingPatch) (Rate, *float64, error) {
	if patch.Date != nil || patch.Time != nil || patch.Guests != nil {
		return Rate{}, nil, fmt.Errorf("%w: room bookings only accept checkIn and checkOut changes", models.ErrValidation)
	}

	checkIn := valueOr(patch.CheckIn, stay.CheckIn)
	checkOut := valueOr(patch.CheckOut, stay.CheckOut)
	nights, err := s.stayNights(checkIn, checkOut)
	if err != nil {
		return Rate{}, nil, err
	}

	rate := ResolveRoomRate(current)
	perNight, ok := rate.Value()
	if !ok {
		return rate, nil, nil
	}
	total := PriceRoomStay(perNight, nights)
	return rate, &total, nil
}

func (s *DefaultBookingService) repriceServiceSlot(current *models.Booking, slot *models.ServiceSlot, patch models.BookingPatch) (Rate, *float64, error) {
	if patch.CheckIn != nil || patch.CheckOut != nil {
		return Rate{}, nil, fmt.Errorf("%w: service bookings only accept date, time and guests changes", models.ErrValidation)
	}
	if patch.Date != nil {
		if _, err := ParseDate(*patch.Date, s.location()); err != nil {
			return Rate{}, nil, err
		}
	}
	if patch.Time != nil && *patch.Time == "" {
		return Rate{}, nil, fmt.Errorf("%w: time slot must not be empty", models.ErrValidation)
	}

	guests := slot.Guests
	if patch.Guests != nil {
		guests = *patch.Guests
		if err := validateGuests(guests); err != nil {
			return Rate{}, nil, err
		}
	}

	// A stored record with no guest count keeps its total.
	if guests <= 0 {
		return Unresolvable(), nil, nil
	}
	rate := ResolveServiceRate(current)
	perGuest, ok := rate.Value()
	if !ok {
		return rate, nil, nil
	}
	total := PriceService(perGuest, guests)
	return rate, &total, nil
}

func valueOr(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}
