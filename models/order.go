package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order records a single purchased product for a user. The product name and
// category are denormalized at purchase time so that recommendation prompts
// can be built from orders alone.
// Collection: orders
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UserID       int64              `bson:"user_id" json:"user_id"`
	ProductID    int64              `bson:"product_id" json:"product_id"`
	ProductName  string             `bson:"product_name" json:"product_name"`
	CategoryName string             `bson:"category_name" json:"category_name"`
}
