package handlers_test

import (
	"context"
	"strings"

	"github.com/alligator-app/backend/internal/models"
	"github.com/alligator-app/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository for handler tests. createErr
// and getUserErr, when set, are returned instead of touching the store so
// tests can exercise backing-store failures.
type fakeUserRepo struct {
	users      map[primitive.ObjectID]*models.User
	createErr  error
	getUserErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = primitive.NewObjectID()
	if user.Followers == nil {
		user.Followers = []primitive.ObjectID{}
	}
	if user.Notifications == nil {
		user.Notifications = []interface{}{}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if r.getUserErr != nil {
		return nil, r.getUserErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) SearchUsers(_ context.Context, query string) ([]models.User, error) {
	var matched []models.User
	for _, user := range r.users {
		if strings.Contains(strings.ToLower(user.Username), strings.ToLower(query)) {
			matched = append(matched, *user)
		}
	}
	return matched, nil
}

func (r *fakeUserRepo) AppendFollower(_ context.Context, userID, followID primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Followers = append(user.Followers, followID)
	return nil
}

func (r *fakeUserRepo) PushNotification(_ context.Context, userID primitive.ObjectID, entry interface{}) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Notifications = append(user.Notifications, entry)
	return nil
}

// fakePostRepo is an in-memory PostRepository for handler tests
type fakePostRepo struct {
	posts []models.Post
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.Likes = 0
	post.Views = 0
	post.Replies = []models.Reply{}
	r.posts = append(r.posts, *post)
	return nil
}

func (r *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	out := make([]models.Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}
