package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nutridash/backend/config"
	"github.com/nutridash/backend/internal/database"
	"github.com/nutridash/backend/internal/router"
	"github.com/nutridash/backend/internal/server"
	"github.com/nutridash/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.ValidateConfig(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	deps := router.Deps{
		DB:          db,
		AuthService: service.NewAuthService(db, cfg.JWTSecret),
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, mutation rate limiting disabled: %v", err)
	} else {
		deps.Redis = redisClient
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		deps.ImageService = service.NewImageService(s3Config)
	}

	srv := server.New(cfg, router.New(cfg, deps))

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
