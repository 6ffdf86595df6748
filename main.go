package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assemblr/config"
	"assemblr/cron"
	"assemblr/database"
	bookingRepoPkg "assemblr/database/repository/booking"
	providerRepoPkg "assemblr/database/repository/provider"
	reviewRepoPkg "assemblr/database/repository/review"
	serviceRepoPkg "assemblr/database/repository/service"
	"assemblr/handlers"
	"assemblr/middleware"
	"assemblr/routes"
	"assemblr/services/booking"
	"assemblr/services/provider"
	"assemblr/services/review"
	"assemblr/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	availabilityStore := &booking.AvailabilityStore{
		Providers: providerRepo,
		Cache:     utils.GetCacheClient(),
	}
	conflictDetector := &booking.ConflictDetector{Bookings: bookingRepo}
	bookingService := booking.NewBookingService(bookingRepo, serviceRepo, availabilityStore, conflictDetector)
	reviewService := &review.DefaultReviewService{
		Reviews:   reviewRepo,
		Providers: providerRepo,
		Bookings:  bookingRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo:  providerRepo,
		Store: availabilityStore,
	}

	// handlers and routes.
	bookingHandler := handlers.NewBookingHandler(bookingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	providerHandler := handlers.NewProviderHandler(providerService)
	routes.RegisterBookingRoutes(router, bookingHandler, reviewHandler)
	routes.RegisterProviderRoutes(router, providerHandler)

	// Nightly rating reconciliation.
	cron.InitRatingWorker(reviewService, providerRepo)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("mongo disconnect: %v", err)
	}
}
