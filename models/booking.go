package models

import "time"

// Booking represents a hotel stay reserved by a user.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	PropertyID      string    `bson:"property_id" json:"property_id"`
	PropertyName    string    `bson:"property_name" json:"property_name"` // denormalized at booking time
	CheckIn         string    `bson:"check_in" json:"check_in"`           // "YYYY-MM-DD"
	CheckOut        string    `bson:"check_out" json:"check_out"`         // "YYYY-MM-DD"
	Status          string    `bson:"status" json:"status"`               // e.g. "confirmed", "pending", "cancelled"
	TotalPrice      float64   `bson:"total_price" json:"total_price"`
	PaymentMethod   string    `bson:"payment_method" json:"payment_method"` // e.g. "card", "pay_at_hotel"
	Guests          int       `bson:"guests" json:"guests"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
