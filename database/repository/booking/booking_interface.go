package bookingRepo

import (
	"context"

	"staynest/models"
)

// BookingRepository defines read access to bookings.
type BookingRepository interface {
	// ListRecentByUser returns up to limit bookings of the user, newest first.
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error)
}
