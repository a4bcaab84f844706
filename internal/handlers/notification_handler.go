package handlers

import (
	"net/http"

	"github.com/alligator-app/backend/internal/middleware"
	"github.com/alligator-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	userRepository repositories.UserRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(userRepo repositories.UserRepository) *NotificationHandler {
	return &NotificationHandler{userRepository: userRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
}

// GetNotifications returns the acting user's notification list verbatim.
// Entries are opaque; an empty list is a valid result.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
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

	notifications := user.Notifications
	if notifications == nil {
		notifications = []interface{}{}
	}
	return c.JSON(http.StatusOK, notifications)
}
