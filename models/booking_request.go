package models

// BookingDraft is a guest-confirmed booking request, either a RoomStayDraft or a ServiceDraft.
type BookingDraft interface {
	Owner() string
	isBookingDraft()
}

// RoomStayDraft requests a room for a date range. Price comes from the room catalog.
type RoomStayDraft struct {
	UserID   string
	RoomID   string
	CheckIn  string
	CheckOut string
}

func (d RoomStayDraft) Owner() string { return d.UserID }
func (RoomStayDraft) isBookingDraft() {}

// ServiceDraft requests an amenity slot. Price comes from the service catalog.
type ServiceDraft struct {
	UserID          string
	ServiceID       string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

func (d ServiceDraft) Owner() string { return d.UserID }
func (ServiceDraft) isBookingDraft() {}

// BookingPatch holds the mutable fields of an edit. Nil fields are left untouched.
// CheckIn/CheckOut apply to room stays; Date/Time/Guests apply to services.
type BookingPatch struct {
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Guests   *int    `json:"guests,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p BookingPatch) IsEmpty() bool {
	return p.CheckIn == nil && p.CheckOut == nil && p.Date == nil && p.Time == nil && p.Guests == nil
}

// BookingUpdate is the partial update handed to the store: the patch plus an
// optional recomputed total price.
type BookingUpdate struct {
	BookingPatch
	TotalPrice *float64
}
