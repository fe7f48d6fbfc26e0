package booking

import "math"

// PriceRoomStay returns the total for a stay. Callers reject nights <= 0.
func PriceRoomStay(ratePerNight float64, nights int) float64 {
	return roundCents(ratePerNight * float64(nights))
}

// PriceService returns the total for a service slot. A zero rate is a complimentary service.
func PriceService(ratePerGuest float64, guests int) float64 {
	return roundCents(ratePerGuest * float64(guests))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
