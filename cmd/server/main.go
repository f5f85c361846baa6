package main

import (
	"log"
	"net/http"

	_ "tryon/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tryon/internal/cache"
	"tryon/internal/config"
	"tryon/internal/db"
	"tryon/internal/handler"
	"tryon/internal/model"
	"tryon/internal/repository"
	"tryon/internal/router"
	"tryon/internal/service"
	"tryon/internal/storage"
)

// @title Virtual Try-On API
// @version 1.0
// @description Virtual try-on backend: user accounts, saved outfits, and photo try-on uploads.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Outfit{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	uploader, err := storage.New(
		cfg.AWSAccessKeyID,
		cfg.AWSSecretAccessKey,
		cfg.S3Endpoint,
		cfg.S3Region,
		cfg.S3Bucket,
		cfg.CDNBase,
	)
	if err != nil {
		log.Fatalf("object store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	outfitRepo := repository.NewOutfitRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient, cfg.DependencyTimeout)
	outfitService := service.NewOutfitService(outfitRepo, cfg.DependencyTimeout)
	tryOnService := service.NewTryOnService(uploader, cfg.DependencyTimeout)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	outfitHandler := handler.NewOutfitHandler(outfitService)
	tryOnHandler := handler.NewTryOnHandler(tryOnService)

	router.Register(e, userHandler, outfitHandler, tryOnHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
