package models

import "time"

// WishlistEntry marks a property saved by a user.
type WishlistEntry struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	PropertyID string    `bson:"property_id" json:"property_id"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
