package booking

import (
	"context"
	"fmt"

	"blueriver/models"

	"go.uber.org/zap"
)

// Create validates a draft, prices it from the catalog and stores it as Confirmed.
// The returned booking carries the store-assigned ID.
func (s *DefaultBookingService) Create(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	if draft == nil || draft.Owner() == "" {
		return nil, fmt.Errorf("%w: user is required", models.ErrValidation)
	}

	var (
		b   *models.Booking
		err error
	)
	switch d := draft.(type) {
	case models.RoomStayDraft:
		b, err = s.newRoomStay(ctx, d)
	case models.ServiceDraft:
		b, err = s.newServiceSlot(d)
	default:
		return nil, fmt.Errorf("%w: unsupported booking draft %T", models.ErrValidation, draft)
	}
	if err != nil {
		s.logger().Warn("booking rejected",
			zap.String("user_id", draft.Owner()),
			zap.Error(err),
		)
		return nil, err
	}

	id, err := s.Repo.Create(ctx, b)
	if err != nil {
		s.logger().Error("failed to store booking", zap.String("user_id", b.UserID), zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}
	b.ID = id

	s.logger().Info("booking created",
		zap.String("booking_id", id),
		zap.String("user_id", b.UserID),
		zap.String("kind", string(b.Kind())),
		zap.Float64("total_price", b.TotalPrice),
	)
	return b, nil
}

func (s *DefaultBookingService) newRoomStay(ctx context.Context, d models.RoomStayDraft) (*models.Booking, error) {
	if d.CheckIn == "" || d.CheckOut == "" {
		return nil, fmt.Errorf("%w: check-in and check-out dates are required", models.ErrValidation)
	}
	nights, err := s.stayNights(d.CheckIn, d.CheckOut)
	if err != nil {
		return nil, err
	}

	now := s.now()
	checkIn, _ := ParseDate(d.CheckIn, s.location())
	if checkIn.Before(startOfDay(now)) {
		return nil, fmt.Errorf("%w: check-in date %s is in the past", models.ErrInvalidDateRange, d.CheckIn)
	}

	room, err := s.Rooms.GetByID(ctx, d.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	rate := room.Price
	return &models.Booking{
		UserID:     d.UserID,
		Status:     models.BookingStatusConfirmed,
		TotalPrice: PriceRoomStay(rate, nights),
		CreatedAt:  now.UTC(),
		Details: &models.RoomStay{
			RoomID:        room.ID,
			RoomName:      room.Name,
			RoomImage:     room.Image,
			CheckIn:       d.CheckIn,
			CheckOut:      d.CheckOut,
			PricePerNight: &rate,
		},
	}, nil
}

func (s *DefaultBookingService) newServiceSlot(d models.ServiceDraft) (*models.Booking, error) {
	if d.Date == "" || d.Time == "" {
		return nil, fmt.Errorf("%w: date and time slot are required", models.ErrValidation)
	}
	if err := validateGuests(d.Guests); err != nil {
		return nil, err
	}

	offering, err := s.Catalog.Get(d.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	date, err := ParseDate(d.Date, s.location())
	if err != nil {
		return nil, err
	}
	now := s.now()
	if date.Before(startOfDay(now)) || IsPastSlot(date, d.Time, now) {
		return nil, fmt.Errorf("%w: %s %s", models.ErrSlotInPast, d.Date, d.Time)
	}

	rate := offering.Price
	return &models.Booking{
		UserID:     d.UserID,
		Status:     models.BookingStatusConfirmed,
		TotalPrice: PriceService(rate, d.Guests),
		CreatedAt:  now.UTC(),
		Details: &models.ServiceSlot{
			ServiceName:     offering.Name,
			ServiceImage:    offering.Image,
			Date:            d.Date,
			Time:            d.Time,
			Guests:          d.Guests,
			SpecialRequests: d.SpecialRequests,
			PricePerPerson:  &rate,
		},
	}, nil
}

// stayNights validates a check-in/check-out pair and returns the number of nights.
func (s *DefaultBookingService) stayNights(checkInRaw, checkOutRaw string) (int, error) {
	checkIn, err := ParseDate(checkInRaw, s.location())
	if err != nil {
		return 0, err
	}
	checkOut, err := ParseDate(checkOutRaw, s.location())
	if err != nil {
		return 0, err
	}
	if !checkOut.After(checkIn) {
		return 0, fmt.Errorf("%w: %s to %s", models.ErrInvalidDateRange, checkInRaw, checkOutRaw)
	}
	nights := DurationInDays(checkIn, checkOut)
	if nights <= 0 {
		return 0, fmt.Errorf("%w: %s to %s", models.ErrInvalidDateRange, checkInRaw, checkOutRaw)
	}
	return nights, nil
}

func validateGuests(guests int) error {
	if guests < 1 || guests > MaxGuests {
		return fmt.Errorf("%w: guests must be between 1 and %d", models.ErrValidation, MaxGuests)
	}
	return nil
}
