package handlers

import (
	"net/http"

	"github.com/alligator-app/backend/internal/middleware"
	"github.com/alligator-app/backend/internal/models"
	"github.com/alligator-app/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FollowHandler handles follow HTTP requests
type FollowHandler struct {
	userRepository repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{userRepository: userRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow", h.FollowUser)
}

// FollowUser appends the followed id onto the acting user's follower
// list. The target is not checked for existence, duplicates append
// twice, and self-follow is allowed. The target user does get a follow
// notification when it resolves.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	actingID, err := primitive.ObjectIDFromHex(middleware.UserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "Invalid token subject")
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	followID, err := primitive.ObjectIDFromHex(req.FollowID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid followId")
	}

	if err := h.userRepository.AppendFollower(c.Request().Context(), actingID, followID); err != nil {
		if err == repositories.ErrUserNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Notify the followed user. Best effort: an unresolvable target
	// does not fail the follow itself.
	if actor, err := h.userRepository.GetUserByID(c.Request().Context(), actingID); err == nil {
		entry := models.FollowNotification{
			Type:    "follow",
			ActorID: actingID.Hex(),
			Message: actor.Username + " started following you",
		}
		_ = h.userRepository.PushNotification(c.Request().Context(), followID, entry)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User followed"})
}
