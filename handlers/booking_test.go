package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blueriver/models"
	"blueriver/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Create(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	args := m.Called(ctx, draft)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) List(ctx context.Context, userID string) ([]*models.Booking, error) {
	args := m.Called(ctx, userID)
	bs, _ := args.Get(0).([]*models.Booking)
	return bs, args.Error(1)
}

func (m *mockBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) Edit(ctx context.Context, id string, patch models.BookingPatch) (*booking.EditResult, error) {
	args := m.Called(ctx, id, patch)
	r, _ := args.Get(0).(*booking.EditResult)
	return r, args.Error(1)
}

func (m *mockBookingService) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// setupBookingRouter wires the handler behind a stub auth middleware that sets userID.
func setupBookingRouter(svc booking.BookingService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	auth := func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	}
	g := r.Group("/api/bookings", auth)
	g.POST("/rooms", h.CreateRoomBookingHandler)
	g.POST("/services", h.CreateServiceBookingHandler)
	g.GET("", h.ListBookingsHandler)
	g.GET("/:id", h.GetBookingHandler)
	g.PATCH("/:id", h.EditBookingHandler)
	g.DELETE("/:id", h.CancelBookingHandler)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func stay(id, userID string, total float64) *models.Booking {
	rate := 5000.0
	return &models.Booking{
		ID:         id,
		UserID:     userID,
		Status:     models.BookingStatusConfirmed,
		TotalPrice: total,
		Details: &models.RoomStay{
			RoomID:        "r1",
			CheckIn:       "2026-03-12",
			CheckOut:      "2026-03-14",
			PricePerNight: &rate,
		},
	}
}

func TestCreateRoomBookingHandler(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Create", mock.Anything, models.RoomStayDraft{
		UserID: "u1", RoomID: "r1", CheckIn: "2026-03-12", CheckOut: "2026-03-14",
	}).Return(stay("b1", "u1", 10000), nil)

	w := doJSON(setupBookingRouter(svc, "u1"), http.MethodPost, "/api/bookings/rooms", gin.H{
		"roomId": "r1", "checkIn": "2026-03-12", "checkOut": "2026-03-14",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "b1", body["id"])
	assert.Equal(t, "room", body["type"])
	assert.Equal(t, 10000.0, body["totalPrice"])
	svc.AssertExpectations(t)
}

func TestCreateRoomBookingHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid range", err: models.ErrInvalidDateRange, status: http.StatusUnprocessableEntity},
		{name: "room missing", err: models.ErrNotFound, status: http.StatusNotFound},
		{name: "store down", err: models.ErrStoreUnavailable, status: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockBookingService)
			svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(setupBookingRouter(svc, "u1"), http.MethodPost, "/api/bookings/rooms", gin.H{
				"roomId": "r1", "checkIn": "2026-03-12", "checkOut": "2026-03-12",
			})

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"message"`)
		})
	}
}

func TestCreateRoomBookingHandler_BadBody(t *testing.T) {
	svc := new(mockBookingService)

	w := doJSON(setupBookingRouter(svc, "u1"), http.MethodPost, "/api/bookings/rooms", gin.H{"roomId": "r1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateServiceBookingHandler_SlotInPast(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Create", mock.Anything, models.ServiceDraft{
		UserID: "u1", ServiceID: "spa", Date: "2026-03-10", Time: "08:00 AM", Guests: 2,
	}).Return(nil, models.ErrSlotInPast)

	w := doJSON(setupBookingRouter(svc, "u1"), http.MethodPost, "/api/bookings/services", gin.H{
		"serviceId": "spa", "date": "2026-03-10", "time": "08:00 AM", "guests": 2,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListBookingsHandler(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("List", mock.Anything, "u1").Return([]*models.Booking{stay("b2", "u1", 1), stay("b1", "u1", 2)}, nil)

	w := doJSON(setupBookingRouter(svc, "u1"), http.MethodGet, "/api/bookings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Bookings []models.BookingRecord `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Bookings, 2)
	assert.Equal(t, "b2", body.Bookings[0].ID)
}

func TestListBookingsHandler_Unauthenticated(t *testing.T) {
	svc := new(mockBookingService)

	w := doJSON(setupBookingRouter(svc, ""), http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBookingHandler_OtherOwnerIsNotFound(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Get", mock.Anything, "b1").Return(stay("b1", "u2", 10000), nil)

	w := doJSON(setupBookingRouter(svc, "u1"), http.MethodGet, "/api/bookings/b1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditBookingHandler(t *testing.T) {
	svc := new(mockBookingService)
	checkOut := "2026-03-17"
	svc.On("Get", mock.Anything, "b1").Return(stay("b1", "u1", 10000), nil)
	svc.On("Edit", mock.Anything, "b1", models.BookingPatch{CheckOut: &checkOut}).
		Return(&booking.EditResult{Booking: stay("b1", "u1", 25000), Repriced: true}, nil)

	w := doJSON(setupBookingRouter(svc, "u1"), http.MethodPatch, "/api/bookings/b1", gin.H{"checkOut": checkOut})

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Booking  models.BookingRecord `json:"booking"`
		Repriced bool                 `json:"repriced"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Repriced)
	assert.Equal(t, 25000.0, body.Booking.TotalPrice)
}

func TestEditBookingHandler_InvalidRange(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Get", mock.Anything, "b1").Return(stay("b1", "u1", 10000), nil)
	svc.On("Edit", mock.Anything, "b1", mock.Anything).Return(nil, models.ErrInvalidDateRange)

	w := doJSON(setupBookingRouter(svc, "u1"), http.MethodPatch, "/api/bookings/b1", gin.H{"checkOut": "2026-03-12"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCancelBookingHandler(t *testing.T) {
	svc := new(mockBookingService)
	svc.On("Get", mock.Anything, "b1").Return(stay("b1", "u1", 10000), nil)
	svc.On("Cancel", mock.Anything, "b1").Return(nil)
	svc.On("Get", mock.Anything, "gone").Return(nil, models.ErrNotFound)

	r := setupBookingRouter(svc, "u1")

	w := doJSON(r, http.MethodDelete, "/api/bookings/b1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/bookings/gone", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNumberOfCalls(t, "Cancel", 1)
}
