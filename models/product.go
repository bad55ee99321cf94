package models

import "time"

// Product is a sellable catalogue item.
// Collection: products
//
// Products carry numeric ids (int64 _id): the AI id-recommendation path
// exchanges product ids with the model as JSON integers, so ObjectID hex
// strings are not an option here.
//
// CategoryName is denormalized from the categories collection so that
// prompt rendering and DTO mapping need no extra lookup.
type Product struct {
	ID            int64     `bson:"_id" json:"id"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
	CategoryID    int64     `bson:"category_id" json:"category_id"`
	CategoryName  string    `bson:"category_name" json:"category_name"`
	CategorySlug  string    `bson:"category_slug" json:"category_slug"`
	Name          string    `bson:"name" json:"name"`
	Slug          string    `bson:"slug" json:"slug"`
	Description   string    `bson:"description" json:"description"`
	AIDescription string    `bson:"ai_description" json:"ai_description"`
	Price         float64   `bson:"price" json:"price"`
	ImageURL      string    `bson:"image_url" json:"image_url"`
}
