package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/api"
	"github.com/RealCheck/RealCheck-backend/internal/cache"
	"github.com/RealCheck/RealCheck-backend/internal/config"
	"github.com/RealCheck/RealCheck-backend/internal/database"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/RealCheck/RealCheck-backend/internal/services"
)

func main() {
	// load config
	cfg, err := config.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// initialize database
	if err := database.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// execute database migration
	if err := database.Migrate(
		&models.User{},
		&models.News{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// initialize seed data
	seedService := services.NewSeedService()
	if err := seedService.SeedAllData(); err != nil {
		log.Printf("Warning: Failed to seed initial data: %v", err)
	}

	// initialize redis (token revocation). 连不上只是降级，不致命
	if err := cache.Initialize(cfg); err != nil {
		log.Printf("Warning: redis unavailable, token revocation disabled: %v", err)
	} else {
		defer cache.GetCache().Close()
	}

	// set up routes
	router := api.SetupRoutes()

	// create http server
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		if err := server.Close(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server is starting on %s", cfg.Server.Address)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
