package models

// Room is read-only catalog data for a bookable room.
type Room struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Type        string   `bson:"type" json:"type"`
	Description string   `bson:"description" json:"description"`
	Image       string   `bson:"image" json:"image"`
	Price       float64  `bson:"price" json:"price"` // per night
	Capacity    int      `bson:"capacity" json:"capacity"`
	Amenities   []string `bson:"amenities" json:"amenities"`
}

// PriceBand is a named nightly price bracket used to narrow the room list.
type PriceBand string

const (
	PriceBandAny         PriceBand = ""
	PriceBandBudget      PriceBand = "budget"
	PriceBandMidRange    PriceBand = "mid-range"
	PriceBandLuxury      PriceBand = "luxury"
	PriceBandUltraLuxury PriceBand = "ultra-luxury"
)

// Contains reports whether a nightly price falls in the band. Lower bounds are inclusive.
func (b PriceBand) Contains(price float64) bool {
	switch b {
	case PriceBandBudget:
		return price < 15000
	case PriceBandMidRange:
		return price >= 15000 && price < 40000
	case PriceBandLuxury:
		return price >= 40000 && price < 80000
	case PriceBandUltraLuxury:
		return price >= 80000
	default:
		return true
	}
}

// RoomFilter narrows the room catalog. Zero fields match everything.
type RoomFilter struct {
	Type       string
	Query      string
	PriceRange PriceBand
}
