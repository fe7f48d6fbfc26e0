package roomRepo

import (
	"fmt"
	"strings"

	"blueriver/models"
)

// ParsePriceBand accepts a band name case-insensitively. Empty and "all" mean no band.
func ParsePriceBand(s string) (models.PriceBand, error) {
	switch band := models.PriceBand(strings.ToLower(strings.TrimSpace(s))); band {
	case "", "all":
		return models.PriceBandAny, nil
	case models.PriceBandBudget, models.PriceBandMidRange, models.PriceBandLuxury, models.PriceBandUltraLuxury:
		return band, nil
	default:
		return "", fmt.Errorf("%w: unknown price range %q", models.ErrValidation, s)
	}
}

// FilterRooms applies f to rooms in order: type (exact, "All" matches any),
// then a case-insensitive substring of name or description, then price band.
func FilterRooms(rooms []models.Room, f models.RoomFilter) []models.Room {
	roomType := strings.TrimSpace(f.Type)
	if strings.EqualFold(roomType, "all") {
		roomType = ""
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if roomType != "" && room.Type != roomType {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(room.Name), query) &&
			!strings.Contains(strings.ToLower(room.Description), query) {
			continue
		}
		if !f.PriceRange.Contains(room.Price) {
			continue
		}
		out = append(out, room)
	}
	return out
}
