package models

import "time"

// Category groups products for browsing and recommendation candidates.
// Collection: categories
//
// Categories use numeric ids (int64 _id) because product ids must be
// plain integers on the wire; see Product.
type Category struct {
	ID        int64     `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	Name      string    `bson:"name" json:"name"`
	Slug      string    `bson:"slug" json:"slug"`
}
