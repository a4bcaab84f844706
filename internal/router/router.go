package router

import (
	"log"
	"path/filepath"

	"github.com/alligator-app/backend/internal/handlers"
	"github.com/alligator-app/backend/internal/media"
	"github.com/alligator-app/backend/internal/middleware"
	"github.com/alligator-app/backend/internal/repositories"
	"github.com/alligator-app/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, mgClient *mongo.Client) error {
	db := mgClient.Database(cfg.MongoDB)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Landing page and uploaded media
	e.File("/", filepath.Join(cfg.PublicDir, "index.html"))
	e.Static("/images", cfg.MediaDir)

	// --- Initialize repositories and media storage ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	mediaStorage, err := media.NewDiskStorage(cfg.MediaDir)
	if err != nil {
		return err
	}

	// --- Unprotected routes for authentication ---
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	postHandler := handlers.NewPostHandler(postRepo, userRepo, mediaStorage)
	postHandler.RegisterPostRoutes(api)

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	followHandler := handlers.NewFollowHandler(userRepo)
	followHandler.RegisterFollowRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(userRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
	return nil
}
