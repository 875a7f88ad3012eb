package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/menubook/backend/config"
	"github.com/menubook/backend/internal/api"
	"github.com/menubook/backend/internal/database"
	"github.com/menubook/backend/internal/router"
	"github.com/menubook/backend/internal/server"
	"github.com/menubook/backend/internal/service"
	"github.com/menubook/backend/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	recipeService := service.NewRecipeService(db)
	menuService := service.NewMenuService(
		database.NewRedisListStore(redisClient),
		recipeService,
		database.NewRedisSessionLocker(redisClient, 5*time.Second),
	)

	sessions := session.NewManager(cfg.SessionSecret)
	engine := router.SetupRouter(
		api.NewRecipeHandler(recipeService),
		api.NewMenuHandler(menuService, recipeService),
		sessions,
		"templates/*.html",
	)

	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
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

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
