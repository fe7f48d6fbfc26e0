package roomRepo

import (
	"testing"

	"blueriver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRooms() []models.Room {
	return []models.Room{
		{ID: "r1", Name: "Garden Room", Type: "Standard", Description: "Ground floor, garden view", Price: 12000},
		{ID: "r2", Name: "Deluxe Suite", Type: "Suite", Description: "Ocean view balcony", Price: 15000},
		{ID: "r3", Name: "Family Villa", Type: "Villa", Description: "Two bedrooms and a private pool", Price: 39999},
		{ID: "r4", Name: "Presidential Suite", Type: "Suite", Description: "Top floor with butler", Price: 80000},
		{ID: "r5", Name: "Honeymoon Villa", Type: "Villa", Description: "Secluded, OCEAN facing", Price: 40000},
	}
}

func roomIDs(rooms []models.Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.ID
	}
	return out
}

func TestFilterRooms(t *testing.T) {
	tests := []struct {
		name   string
		filter models.RoomFilter
		want   []string
	}{
		{name: "no filter", want: []string{"r1", "r2", "r3", "r4", "r5"}},
		{name: "type all", filter: models.RoomFilter{Type: "All"}, want: []string{"r1", "r2", "r3", "r4", "r5"}},
		{name: "type", filter: models.RoomFilter{Type: "Suite"}, want: []string{"r2", "r4"}},
		{name: "query matches name", filter: models.RoomFilter{Query: "villa"}, want: []string{"r3", "r5"}},
		{name: "query matches description", filter: models.RoomFilter{Query: " Ocean "}, want: []string{"r2", "r5"}},
		{name: "budget", filter: models.RoomFilter{PriceRange: models.PriceBandBudget}, want: []string{"r1"}},
		{name: "mid-range lower bound inclusive", filter: models.RoomFilter{PriceRange: models.PriceBandMidRange}, want: []string{"r2", "r3"}},
		{name: "luxury", filter: models.RoomFilter{PriceRange: models.PriceBandLuxury}, want: []string{"r5"}},
		{name: "ultra-luxury", filter: models.RoomFilter{PriceRange: models.PriceBandUltraLuxury}, want: []string{"r4"}},
		{
			name:   "combined",
			filter: models.RoomFilter{Type: "Villa", Query: "ocean", PriceRange: models.PriceBandLuxury},
			want:   []string{"r5"},
		},
		{name: "nothing matches", filter: models.RoomFilter{Type: "Cabin"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roomIDs(FilterRooms(catalogRooms(), tt.filter)))
		})
	}
}

func TestParsePriceBand(t *testing.T) {
	for in, want := range map[string]models.PriceBand{
		"":             models.PriceBandAny,
		"All":          models.PriceBandAny,
		"Budget":       models.PriceBandBudget,
		"mid-range":    models.PriceBandMidRange,
		"LUXURY":       models.PriceBandLuxury,
		"Ultra-Luxury": models.PriceBandUltraLuxury,
	} {
		got, err := ParsePriceBand(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePriceBand("cheap")
	assert.ErrorIs(t, err, models.ErrValidation)
}
