package models

import "time"

// Property statuses. Only approved properties are publicly listed.
const (
	PropertyPending  = "pending"
	PropertyApproved = "approved"
	PropertyRejected = "rejected"
)

// Property is a listing owned by a host.
type Property struct {
	ID            string    `bson:"id" json:"id"`
	OwnerID       string    `bson:"owner_id" json:"owner_id"`
	Name          string    `bson:"name" json:"name"`
	City          string    `bson:"city" json:"city"`
	Type          string    `bson:"type" json:"type"` // e.g. "hotel", "villa", "resort"
	PricePerNight float64   `bson:"price_per_night" json:"price_per_night"`
	Rating        float64   `bson:"rating" json:"rating"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
