package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a social media post stored in MongoDB
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user"`
	Content   string             `json:"content" bson:"content"`
	Image     *string            `json:"image" bson:"image"`
	Video     string             `json:"video,omitempty" bson:"video,omitempty"`
	Likes     int                `json:"likes" bson:"likes"`
	Views     int                `json:"views" bson:"views"`
	Replies   []Reply            `json:"replies" bson:"replies"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
}

// Reply is an inline comment on a post. The commenter is recorded as free
// text, not a user reference. No endpoint creates replies yet; the field
// exists so externally written documents round-trip.
type Reply struct {
	User    string `json:"user" bson:"user"`
	Comment string `json:"comment" bson:"comment"`
}
