// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"blueriver/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document. IDs are UUIDv7 so they sort by creation time.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate booking id: %w", err)
	}

	rec := booking.Record()
	rec.ID = id.String()

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return "", storeError("failed to create booking", err)
	}
	booking.ID = rec.ID
	return rec.ID, nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.BookingRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rec); err != nil {
		return nil, storeError(fmt.Sprintf("failed to fetch booking with id %s", id), err)
	}
	return rec.Booking(), nil
}

// GetByUserID retrieves all bookings owned by a user, newest first.
func (r *MongoBookingRepo) GetByUserID(ctx context.Context, userID string) ([]*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "bookedAt", Value: -1}, {Key: "id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, storeError("failed to retrieve bookings", err)
	}
	defer cursor.Close(ctx)

	var bookings []*models.Booking
	for cursor.Next(ctx) {
		var rec models.BookingRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, rec.Booking())
	}
	if err := cursor.Err(); err != nil {
		return nil, storeError("failed to iterate bookings", err)
	}
	return bookings, nil
}

// Update sets only the fields present in update and returns the merged document.
func (r *MongoBookingRepo) Update(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	set := updateDocument(update)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec models.BookingRecord
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&rec)
	if err != nil {
		return nil, storeError(fmt.Sprintf("failed to update booking with id %s", id), err)
	}
	return rec.Booking(), nil
}

// Delete removes a booking document by its ID.
func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return storeError(fmt.Sprintf("failed to delete booking with id %s", id), err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// updateDocument builds the $set body for a partial update.
func updateDocument(u models.BookingUpdate) bson.M {
	set := bson.M{}
	if u.CheckIn != nil {
		set["checkIn"] = *u.CheckIn
	}
	if u.CheckOut != nil {
		set["checkOut"] = *u.CheckOut
	}
	if u.Date != nil {
		set["date"] = *u.Date
	}
	if u.Time != nil {
		set["time"] = *u.Time
	}
	if u.Guests != nil {
		set["guests"] = *u.Guests
	}
	if u.TotalPrice != nil {
		set["totalPrice"] = *u.TotalPrice
	}
	return set
}
