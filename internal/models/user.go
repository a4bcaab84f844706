package models

import (
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account stored in MongoDB. Password holds the bcrypt
// hash and is never serialized to JSON.
type User struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Username       string               `json:"username" bson:"username"`
	Password       string               `json:"-" bson:"password"`
	ProfilePicture string               `json:"profile_picture,omitempty" bson:"profilePicture,omitempty"`
	Followers      []primitive.ObjectID `json:"followers" bson:"followers"`
	Notifications  []interface{}        `json:"notifications" bson:"notifications"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// FollowRequest defines the request body for following a user
type FollowRequest struct {
	FollowID string `json:"followId" validate:"required"`
}

// FollowNotification is the entry pushed onto the target user's
// notification list when someone follows them. Entries are stored as
// opaque documents, so readers should not rely on this shape.
type FollowNotification struct {
	Type    string `json:"type" bson:"type"`
	ActorID string `json:"actor_id" bson:"actor_id"`
	Message string `json:"message" bson:"message"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}
