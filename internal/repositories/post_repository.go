package repositories

import (
	"context"
	"time"

	"github.com/alligator-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetAllPosts(ctx context.Context) ([]models.Post, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost inserts a new post with zeroed counters and empty replies
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.Likes = 0
	post.Views = 0
	post.Replies = []models.Reply{}
	post.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetAllPosts retrieves every post in store-native (insertion) order.
// No pagination; the feed is global.
func (r *MongoPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
