package catalog

import (
	"fmt"

	"blueriver/models"
)

// DefaultTimeSlots are the hourly slots offered for every amenity.
var DefaultTimeSlots = []string{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM",
	"04:00 PM", "05:00 PM", "06:00 PM", "07:00 PM",
	"08:00 PM", "09:00 PM",
}

// StaticServiceCatalog is the fixed list of bookable amenities.
type StaticServiceCatalog struct {
	offerings []models.ServiceOffering
}

// NewStaticServiceCatalog returns the hotel's amenity list.
func NewStaticServiceCatalog() *StaticServiceCatalog {
	return &StaticServiceCatalog{offerings: []models.ServiceOffering{
		{
			ID:          "beach",
			Name:        "Private Beach Access",
			Description: "Reserved loungers and umbrella on the hotel's private stretch of beach.",
			Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&q=80&w=1000",
			Price:       500,
			Duration:    "Full day",
			TimeSlots:   DefaultTimeSlots,
		},
		{
			ID:          "jacuzzi",
			Name:        "Heated Jacuzzi",
			Description: "Private heated jacuzzi session with towels and refreshments.",
			Image:       "https://a0.muscache.com/im/pictures/2b57605b-6a43-4bf5-995f-ff6afc858020.jpg?im_w=720",
			Price:       1000,
			Duration:    "60 mins",
			TimeSlots:   DefaultTimeSlots,
		},
		{
			ID:          "gym",
			Name:        "Gym Booking",
			Description: "Fully equipped fitness centre slot.",
			Image:       "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?auto=format&fit=crop&q=80&w=1000",
			Price:       300,
			Duration:    "90 mins",
			TimeSlots:   DefaultTimeSlots,
		},
		{
			ID:          "spa",
			Name:        "Luxury Spa & Wellness",
			Description: "Massage and wellness treatment at the hotel spa.",
			Image:       "https://s31606.pcdn.co/wp-content/uploads/2021/01/iStock-913095166-scaled-e1610581460758.jpg",
			Price:       2500,
			Duration:    "120 mins",
			TimeSlots:   DefaultTimeSlots,
		},
	}}
}

// List returns every amenity.
func (c *StaticServiceCatalog) List() []models.ServiceOffering {
	out := make([]models.ServiceOffering, len(c.offerings))
	copy(out, c.offerings)
	return out
}

// Get returns the amenity with the given ID.
func (c *StaticServiceCatalog) Get(id string) (*models.ServiceOffering, error) {
	for i := range c.offerings {
		if c.offerings[i].ID == id {
			o := c.offerings[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("service %q: %w", id, models.ErrNotFound)
}
