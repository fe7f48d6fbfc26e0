package bookingRepo

import (
	"errors"
	"testing"

	"blueriver/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUpdateDocument_OnlyPresentFields(t *testing.T) {
	checkOut := "2026-10-20"
	price := 25000.0

	set := updateDocument(models.BookingUpdate{
		BookingPatch: models.BookingPatch{CheckOut: &checkOut},
		TotalPrice:   &price,
	})

	assert.Equal(t, bson.M{"checkOut": "2026-10-20", "totalPrice": 25000.0}, set)
}

func TestUpdateDocument_ServiceFields(t *testing.T) {
	date := "2026-10-18"
	slot := "09:00 AM"
	guests := 5

	set := updateDocument(models.BookingUpdate{
		BookingPatch: models.BookingPatch{Date: &date, Time: &slot, Guests: &guests},
	})

	assert.Equal(t, bson.M{"date": date, "time": slot, "guests": 5}, set)
	assert.NotContains(t, set, "totalPrice")
}

func TestUpdateDocument_Empty(t *testing.T) {
	assert.Empty(t, updateDocument(models.BookingUpdate{}))
}

func TestStoreError(t *testing.T) {
	err := storeError("fetch", mongo.ErrNoDocuments)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NotErrorIs(t, err, models.ErrStoreUnavailable)

	cause := errors.New("connection reset")
	err = storeError("fetch", cause)
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
}
