package models

import (
	"encoding/json"
	"time"
)

// BookingStatus is the lifecycle status stored on a booking.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusPending   BookingStatus = "Pending"
)

// BookingKind discriminates the two booking variants.
type BookingKind string

const (
	BookingKindRoom    BookingKind = "room"
	BookingKindService BookingKind = "service"
)

// Booking is a reservation owned by a user. Details carries the
// variant-specific payload and is either *RoomStay or *ServiceSlot.
type Booking struct {
	ID         string
	UserID     string
	Status     BookingStatus
	TotalPrice float64
	CreatedAt  time.Time // zero when the store never recorded it
	Details    BookingDetails
}

// BookingDetails is implemented only by *RoomStay and *ServiceSlot.
type BookingDetails interface {
	Kind() BookingKind
	isBookingDetails()
}

// RoomStay is a reservation of a room for a contiguous date range.
type RoomStay struct {
	RoomID        string
	RoomName      string
	RoomImage     string
	CheckIn       string // YYYY-MM-DD
	CheckOut      string // YYYY-MM-DD
	PricePerNight *float64
}

func (*RoomStay) Kind() BookingKind { return BookingKindRoom }
func (*RoomStay) isBookingDetails() {}

// ServiceSlot is a reservation of an amenity for one date and time slot.
type ServiceSlot struct {
	ServiceName     string
	ServiceImage    string
	Date            string // YYYY-MM-DD
	Time            string // e.g. "08:00 AM"
	Guests          int
	SpecialRequests string
	PricePerPerson  *float64
}

func (*ServiceSlot) Kind() BookingKind { return BookingKindService }
func (*ServiceSlot) isBookingDetails() {}

// Kind reports the booking variant. Bookings without details are treated as rooms,
// matching records written before the discriminator existed.
func (b *Booking) Kind() BookingKind {
	if b.Details == nil {
		return BookingKindRoom
	}
	return b.Details.Kind()
}

// BookingRecord is the flat stored and wire shape of a booking. The type field
// selects which of the optional fields apply; an empty type means a room stay.
type BookingRecord struct {
	ID         string        `bson:"id" json:"id"`
	UserID     string        `bson:"userId" json:"userId"`
	Type       BookingKind   `bson:"type,omitempty" json:"type,omitempty"`
	Status     BookingStatus `bson:"status" json:"status"`
	TotalPrice float64       `bson:"totalPrice" json:"totalPrice"`
	BookedAt   *time.Time    `bson:"bookedAt,omitempty" json:"bookedAt,omitempty"`

	RoomID        string   `bson:"roomId,omitempty" json:"roomId,omitempty"`
	RoomName      string   `bson:"roomName,omitempty" json:"roomName,omitempty"`
	RoomImage     string   `bson:"roomImage,omitempty" json:"roomImage,omitempty"`
	CheckIn       string   `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckOut      string   `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	PricePerNight *float64 `bson:"pricePerNight,omitempty" json:"pricePerNight,omitempty"`

	ServiceName     string   `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	ServiceImage    string   `bson:"serviceImage,omitempty" json:"serviceImage,omitempty"`
	Date            string   `bson:"date,omitempty" json:"date,omitempty"`
	Time            string   `bson:"time,omitempty" json:"time,omitempty"`
	Guests          int      `bson:"guests,omitempty" json:"guests,omitempty"`
	SpecialRequests string   `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	PricePerPerson  *float64 `bson:"pricePerPerson,omitempty" json:"pricePerPerson,omitempty"`
}

// Record flattens the booking into its stored shape.
func (b *Booking) Record() BookingRecord {
	rec := BookingRecord{
		ID:         b.ID,
		UserID:     b.UserID,
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
	}
	if !b.CreatedAt.IsZero() {
		t := b.CreatedAt
		rec.BookedAt = &t
	}

	switch d := b.Details.(type) {
	case *RoomStay:
		rec.Type = BookingKindRoom
		rec.RoomID = d.RoomID
		rec.RoomName = d.RoomName
		rec.RoomImage = d.RoomImage
		rec.CheckIn = d.CheckIn
		rec.CheckOut = d.CheckOut
		rec.PricePerNight = d.PricePerNight
	case *ServiceSlot:
		rec.Type = BookingKindService
		rec.ServiceName = d.ServiceName
		rec.ServiceImage = d.ServiceImage
		rec.Date = d.Date
		rec.Time = d.Time
		rec.Guests = d.Guests
		rec.SpecialRequests = d.SpecialRequests
		rec.PricePerPerson = d.PricePerPerson
	}
	return rec
}

// Booking rebuilds the tagged booking from its flat shape.
func (r BookingRecord) Booking() *Booking {
	b := &Booking{
		ID:         r.ID,
		UserID:     r.UserID,
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
	}
	if r.BookedAt != nil {
		b.CreatedAt = *r.BookedAt
	}

	if r.Type == BookingKindService {
		b.Details = &ServiceSlot{
			ServiceName:     r.ServiceName,
			ServiceImage:    r.ServiceImage,
			Date:            r.Date,
			Time:            r.Time,
			Guests:          r.Guests,
			SpecialRequests: r.SpecialRequests,
			PricePerPerson:  r.PricePerPerson,
		}
		return b
	}

	b.Details = &RoomStay{
		RoomID:        r.RoomID,
		RoomName:      r.RoomName,
		RoomImage:     r.RoomImage,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		PricePerNight: r.PricePerNight,
	}
	return b
}

func (b *Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Record())
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var rec BookingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*b = *rec.Booking()
	return nil
}
