package main

import (
	"log"

	"github.com/alligator-app/backend/internal/router"
	"github.com/alligator-app/backend/pkg/config"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, db.Mongo); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
