package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farewise/config"
	"farewise/database"
	cardsRepo "farewise/database/repository/cards"
	offersRepo "farewise/database/repository/offers"
	"farewise/handlers"
	"farewise/middleware"
	"farewise/routes"
	"farewise/services/card"
	"farewise/services/conversation"
	"farewise/services/flightsearch"
	"farewise/services/intelligence"
	"farewise/services/offers"
	"farewise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Catalogs load once at startup and stay immutable for the process.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelLoad()

	registry, err := cardsRepo.NewMongoCardRegistryRepo().Load(loadCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load card registry: %v", err)
	}
	catalog, err := offersRepo.NewMongoOfferCatalogRepo().Load(loadCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load offer catalog: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware())

	// services.
	cardService := card.NewService(registry)
	offerService := offers.NewService(catalog)
	geminiClient := intelligence.NewClient(config.AppConfig.GeminiAPIKey)
	flightClient := flightsearch.NewClient(config.AppConfig.SerpAPIKey)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour
	ctxStore := conversation.NewRedisContextStore(utils.GetSessionCacheClient(), sessionTTL)

	turnService := conversation.NewTurnService(ctxStore, cardService, geminiClient, flightClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(turnService, ctxStore, offerService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
