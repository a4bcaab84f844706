package handlers

import (
	"net/http"

	"github.com/alligator-app/backend/internal/media"
	"github.com/alligator-app/backend/internal/middleware"
	"github.com/alligator-app/backend/internal/models"
	"github.com/alligator-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	mediaStorage   *media.DiskStorage
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, mediaStorage *media.DiskStorage) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		mediaStorage:   mediaStorage,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/post", h.CreatePost)
	g.GET("/posts", h.GetPosts)
}

// FeedPost is a post with its author expanded to the full user record
type FeedPost struct {
	models.Post
	User *models.User `json:"user"`
}

// CreatePost creates a new post from a multipart form. The content and
// video fields are plain text and may be empty; an image file part is
// optional. The media write and the post insert are not transactional.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(middleware.UserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "Invalid token subject")
	}

	post := &models.Post{
		UserID:  userID,
		Content: c.FormValue("content"),
		Video:   c.FormValue("video"),
	}

	if file, err := c.FormFile("image"); err == nil {
		imagePath, err := h.mediaStorage.Save(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store image")
		}
		post.Image = &imagePath
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Post created"})
}

// GetPosts returns every post with its author populated. Posts whose
// author no longer resolves keep a nil user; referential integrity is
// not enforced at write time.
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Resolve each author once
	userCache := make(map[primitive.ObjectID]*models.User)
	feed := make([]FeedPost, len(posts))
	for i, p := range posts {
		author, ok := userCache[p.UserID]
		if !ok {
			author, err = h.userRepository.GetUserByID(c.Request().Context(), p.UserID)
			if err != nil && err != repositories.ErrUserNotFound {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			userCache[p.UserID] = author
		}
		feed[i] = FeedPost{Post: p, User: author}
	}

	return c.JSON(http.StatusOK, feed)
}
