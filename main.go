package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blueriver/config"
	"blueriver/database"
	bookingRepo "blueriver/database/repository/booking"
	roomRepo "blueriver/database/repository/room"
	userRepoPkg "blueriver/database/repository/user"
	"blueriver/handlers"
	"blueriver/middleware"
	"blueriver/routes"
	"blueriver/services/booking"
	"blueriver/services/catalog"
	"blueriver/services/user"
	"blueriver/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	cache := utils.GetCacheClient()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	utils.StartHealthMonitor(rootCtx, time.Minute, cache, database.MongoClient)

	// repositories.
	db := database.Database()
	bookings := bookingRepo.NewMongoBookingRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)
	rooms := roomRepo.NewCachedRoomRepo(
		roomRepo.NewMongoRoomRepo(db),
		cache,
		config.AppConfig.RoomCacheTTL,
		logger.Named("rooms"),
	)

	// services.
	services := catalog.NewStaticServiceCatalog()
	bookingService := booking.NewBookingService(
		bookings,
		rooms,
		services,
		config.AppConfig.Location(),
		logger.Named("booking"),
	)
	userService := &user.DefaultUserService{
		Repo:     users,
		TokenTTL: config.AppConfig.TokenTTL,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	catalogHandler := handlers.NewCatalogHandler(rooms, services)
	userHandler := handlers.NewUserHandler(userService)

	handlerBundle := &handlers.HandlerBundle{
		HealthHandler: handlers.HealthHandler(utils.GetHealthStatus),

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,

		// Catalog endpoints.
		ListRoomsHandler:    catalogHandler.ListRoomsHandler,
		GetRoomHandler:      catalogHandler.GetRoomHandler,
		ListServicesHandler: catalogHandler.ListServicesHandler,

		// Booking endpoints.
		CreateRoomBookingHandler:    bookingHandler.CreateRoomBookingHandler,
		CreateServiceBookingHandler: bookingHandler.CreateServiceBookingHandler,
		ListBookingsHandler:         bookingHandler.ListBookingsHandler,
		GetBookingHandler:           bookingHandler.GetBookingHandler,
		EditBookingHandler:          bookingHandler.EditBookingHandler,
		CancelBookingHandler:        bookingHandler.CancelBookingHandler,
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Error("main: failed to disconnect from MongoDB", zap.Error(err))
	}
	if err := cache.Close(); err != nil {
		logger.Error("main: failed to close redis client", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
