package main

import (
	"log"

	"task-service/internal/application/services"
	"task-service/internal/config"
	"task-service/internal/delivery/handler"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/db/postgres"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set. Refusing to start.")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)

	tokenCache := infrastructure.NewTokenCache(cfg.RedisURL)
	rateLimiter := infrastructure.NewRateLimiter(cfg.LoginRateWindow, cfg.LoginRateLimit)

	tokenService := services.NewTokenService(tokenRepo, tokenCache)
	authService := services.NewAuthService(userRepo, tokenService, rateLimiter)
	taskService := services.NewTaskService(taskRepo)

	h := handler.NewHandler(authService, taskService)
	e := handler.NewRouter(h, tokenService)

	log.Fatal(e.Start(cfg.Addr))
}
