package repositories

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/alligator-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUserNotFound is returned when a user lookup matches no document.
var ErrUserNotFound = fmt.Errorf("user not found")

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	AppendFollower(ctx context.Context, userID, followID primitive.ObjectID) error
	PushNotification(ctx context.Context, userID primitive.ObjectID, entry interface{}) error
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository. Usernames are
// unique; the index makes concurrent registrations of the same name fail
// at insert instead of both winning the read-then-insert race.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	collection := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("Failed to ensure unique username index: %v", err)
	}

	return &MongoUserRepository{collection: collection}
}

// CreateUser inserts a new user document
func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	if user.Followers == nil {
		user.Followers = []primitive.ObjectID{}
	}
	if user.Notifications == nil {
		user.Notifications = []interface{}{}
	}
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// GetUserByID retrieves a user by ObjectID
func (r *MongoUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by exact username
func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SearchUsers returns users whose username contains the query as a
// case-insensitive literal substring. An empty query matches everyone.
// The query is escaped before being handed to the store so pattern
// metacharacters are matched literally.
func (r *MongoUserRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	filter := bson.M{"username": bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AppendFollower pushes followID onto the user's follower list. There is
// no dedup and no check that followID names a real user; repeated calls
// append repeated entries.
func (r *MongoUserRepository) AppendFollower(ctx context.Context, userID, followID primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"followers": followID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PushNotification appends an opaque entry to the user's notification list
func (r *MongoUserRepository) PushNotification(ctx context.Context, userID primitive.ObjectID, entry interface{}) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"notifications": entry}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
