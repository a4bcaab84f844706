package handlers

import (
	"net/http"

	"github.com/alligator-app/backend/internal/middleware"
	"github.com/alligator-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/search", h.SearchUsers)
	g.GET("/profile", h.GetProfile)
}

// SearchUsers searches for users by a case-insensitive substring of the
// username. An empty or absent query matches every user.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")

	users, err := h.userRepository.SearchUsers(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, users)
}

// GetProfile retrieves the authenticated user's own record
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(middleware.UserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "Invalid token subject")
	}

	user, err := h.userRepository.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}
