package booking

import (
	"time"

	"blueriver/models"
)

// Rate is the outcome of resolving a booking's per-unit price: either a
// resolved value or unresolvable. The zero Rate is unresolvable.
type Rate struct {
	value    float64
	resolved bool
}

func Resolved(v float64) Rate { return Rate{value: v, resolved: true} }

func Unresolvable() Rate { return Rate{} }

// Value returns the rate and whether it was resolved.
func (r Rate) Value() (float64, bool) { return r.value, r.resolved }

func (r Rate) IsResolved() bool { return r.resolved }

// ResolveRoomRate returns the per-night rate of a room stay: the stored rate when
// positive, otherwise total price divided by the booked nights. b must be the
// booking as stored, before any edit is applied.
func ResolveRoomRate(b *models.Booking) Rate {
	stay, ok := b.Details.(*models.RoomStay)
	if !ok {
		return Unresolvable()
	}
	if stay.PricePerNight != nil && *stay.PricePerNight > 0 {
		return Resolved(*stay.PricePerNight)
	}

	checkIn, err := ParseDate(stay.CheckIn, time.UTC)
	if err != nil {
		return Unresolvable()
	}
	checkOut, err := ParseDate(stay.CheckOut, time.UTC)
	if err != nil {
		return Unresolvable()
	}
	nights := DurationInDays(checkIn, checkOut)
	if nights <= 0 {
		return Unresolvable()
	}
	return Resolved(b.TotalPrice / float64(nights))
}

// ResolveServiceRate returns the per-guest rate of a service booking: the stored
// rate when positive, otherwise total price divided by the original guest count.
func ResolveServiceRate(b *models.Booking) Rate {
	slot, ok := b.Details.(*models.ServiceSlot)
	if !ok {
		return Unresolvable()
	}
	if slot.PricePerPerson != nil && *slot.PricePerPerson > 0 {
		return Resolved(*slot.PricePerPerson)
	}
	if slot.Guests <= 0 {
		return Unresolvable()
	}
	return Resolved(b.TotalPrice / float64(slot.Guests))
}
