package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nestfind/config"
	"nestfind/database"
	propertyRepoPkg "nestfind/database/repository/property"
	userRepoPkg "nestfind/database/repository/user"
	"nestfind/handlers"
	"nestfind/middleware"
	"nestfind/routes"
	"nestfind/services/osm"
	"nestfind/services/property"
	"nestfind/services/search"
	"nestfind/services/storage"
	"nestfind/services/user"
	"nestfind/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	propRepo := propertyRepoPkg.NewMongoPropertyRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	searchService := &search.DefaultSearchService{
		Repo:         propRepo,
		IndexTimeout: time.Duration(config.AppConfig.SearchIndexTimeoutMs) * time.Millisecond,
	}
	propertyService := &property.DefaultPropertyService{
		Repo: propRepo,
	}
	userService := &user.DefaultUserService{
		Repo: usrRepo,
	}
	osmService := osm.NewOSMService()

	// handlers.
	searchHandler := &handlers.SearchHandler{SearchService: searchService}
	propertyHandler := &handlers.PropertyHandler{PropertyService: propertyService}
	authHandler := &handlers.AuthHandler{UserService: userService}
	osmHandler := &handlers.OSMHandler{OSMService: osmService}
	storageHandler := &handlers.StorageHandler{StorageSvc: storageService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: usrRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		// Search endpoints.
		ListPropertiesHandler:   searchHandler.ListPropertiesHandler,
		NearbyPropertiesHandler: searchHandler.NearbyPropertiesHandler,

		// Property lifecycle endpoints.
		CreatePropertyHandler: propertyHandler.CreatePropertyHandler,
		GetPropertyHandler:    propertyHandler.GetPropertyHandler,
		UpdatePropertyHandler: propertyHandler.UpdatePropertyHandler,
		DeletePropertyHandler: propertyHandler.DeletePropertyHandler,
		MyPropertiesHandler:   propertyHandler.MyPropertiesHandler,

		// OpenStreetMap endpoints.
		SearchAccommodationHandler: osmHandler.SearchAccommodationHandler,

		// Storage endpoints.
		UploadImageHandler: storageHandler.UploadImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
