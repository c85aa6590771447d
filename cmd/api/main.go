package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hoteldesk/internal/config"
	"hoteldesk/internal/database"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/middleware"
	"hoteldesk/internal/modules/auth"
	"hoteldesk/internal/modules/booking"
	"hoteldesk/internal/modules/registry"
	"hoteldesk/internal/modules/requests"
	jwtsvc "hoteldesk/internal/pkg/jwt"
	"hoteldesk/internal/pkg/logger"
	"hoteldesk/internal/repository"
	"hoteldesk/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Room{}, &domain.Guest{}); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)

	bookingStore := store.NewBookingStore()

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingStore, roomRepo, guestRepo)
	bookingHandler := booking.NewHandler(bookingService, roomRepo)

	requestService := requests.NewService(bookingStore, bookingService)
	requestHandler := requests.NewHandler(requestService)

	registryService := registry.NewService(roomRepo, guestRepo, bookingStore)
	registryHandler := registry.NewHandler(registryService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// any logged-in operator
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			registryHandler.RegisterRoutes(protected)
			requestHandler.RegisterRoutes(protected)

			// admins resolve cancellation requests
			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				requestHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Log.WithField("addr", cfg.HTTPAddr).Info("starting hoteldesk api")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
