package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"blueriver/models"
	"blueriver/services/catalog"
	"blueriver/services/user"
	"blueriver/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, data models.UserRegistrationData) (*user.AuthResponse, error) {
	args := m.Called(ctx, data)
	r, _ := args.Get(0).(*user.AuthResponse)
	return r, args.Error(1)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*user.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	r, _ := args.Get(0).(*user.AuthResponse)
	return r, args.Error(1)
}

func (m *mockUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func setupUserRouter(svc user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc)
	r.POST("/api/users/register", h.RegisterUserHandler)
	r.POST("/api/users/login", h.AuthenticateUserHandler)
	return r
}

func TestRegisterUserHandler(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, models.UserRegistrationData{
		Name: "Nimal", Email: "guest@example.com", Password: "river2026",
	}).Return(&user.AuthResponse{ID: "u1", Token: "tok"}, nil)

	w := doJSON(setupUserRouter(svc), http.MethodPost, "/api/users/register", gin.H{
		"name": "Nimal", "email": "guest@example.com", "password": "river2026",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok"`)
}

func TestRegisterUserHandler_Conflict(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, models.ErrEmailTaken)

	w := doJSON(setupUserRouter(svc), http.MethodPost, "/api/users/register", gin.H{
		"name": "Nimal", "email": "guest@example.com", "password": "river2026",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterUserHandler_InvalidEmail(t *testing.T) {
	svc := new(mockUserService)

	w := doJSON(setupUserRouter(svc), http.MethodPost, "/api/users/register", gin.H{
		"name": "Nimal", "email": "not-an-email", "password": "river2026",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthenticateUserHandler_InvalidCredentials(t *testing.T) {
	svc := new(mockUserService)
	svc.On("Authenticate", mock.Anything, "guest@example.com", "wrong").Return(nil, models.ErrInvalidCredentials)

	w := doJSON(setupUserRouter(svc), http.MethodPost, "/api/users/login", gin.H{
		"email": "guest@example.com", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type stubRooms struct {
	rooms []models.Room
	err   error
}

func (s stubRooms) GetAll(context.Context) ([]models.Room, error) { return s.rooms, s.err }

func (s stubRooms) GetByID(_ context.Context, id string) (*models.Room, error) {
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return &s.rooms[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func TestCatalogHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCatalogHandler(stubRooms{rooms: []models.Room{{ID: "r1", Name: "Deluxe Suite", Price: 5000}}}, catalog.NewStaticServiceCatalog())
	r.GET("/api/rooms", h.ListRoomsHandler)
	r.GET("/api/rooms/:id", h.GetRoomHandler)
	r.GET("/api/services", h.ListServicesHandler)

	w := doJSON(r, http.MethodGet, "/api/rooms", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deluxe Suite")

	w = doJSON(r, http.MethodGet, "/api/rooms/r9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jacuzzi")
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	status := utils.HealthStatus{Mongo: true, Redis: false}
	r.GET("/health", HealthHandler(func() utils.HealthStatus { return status }))

	w := doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	status.Redis = true
	w = doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListRoomsHandler_Filters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rooms := stubRooms{rooms: []models.Room{
		{ID: "r1", Name: "Garden Room", Type: "Standard", Description: "garden view", Price: 12000},
		{ID: "r2", Name: "Deluxe Suite", Type: "Suite", Description: "ocean view", Price: 25000},
		{ID: "r3", Name: "Royal Suite", Type: "Suite", Description: "top floor", Price: 90000},
	}}
	r.GET("/api/rooms", NewCatalogHandler(rooms, catalog.NewStaticServiceCatalog()).ListRoomsHandler)

	tests := []struct {
		name   string
		query  string
		status int
		want   []string
	}{
		{name: "all", query: "", status: http.StatusOK, want: []string{"r1", "r2", "r3"}},
		{name: "type", query: "?type=Suite", status: http.StatusOK, want: []string{"r2", "r3"}},
		{name: "search", query: "?q=OCEAN", status: http.StatusOK, want: []string{"r2"}},
		{name: "price band", query: "?priceRange=Ultra-Luxury", status: http.StatusOK, want: []string{"r3"}},
		{name: "combined", query: "?type=Suite&priceRange=mid-range", status: http.StatusOK, want: []string{"r2"}},
		{name: "no match", query: "?type=Villa", status: http.StatusOK, want: []string{}},
		{name: "unknown band", query: "?priceRange=cheap", status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, "/api/rooms"+tt.query, nil)
			require.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}
			var got []models.Room
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			ids := make([]string, 0, len(got))
			for _, room := range got {
				ids = append(ids, room.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
