// models/service_type.go
package models

// ServiceOffering is an ancillary amenity guests can book by time slot.
type ServiceOffering struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`        // e.g., "Heated Jacuzzi"
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`    // per guest, 0 for complimentary
	Duration    string   `json:"duration"` // display only, e.g. "60 mins"
	TimeSlots   []string `json:"timeSlots"`
}
