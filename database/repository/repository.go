package repository

import (
	"context"

	bookingRepo "staynest/database/repository/booking"
	propertyRepo "staynest/database/repository/property"
	userRepo "staynest/database/repository/user"
	wishlistRepo "staynest/database/repository/wishlist"
	"staynest/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Re-export the repository interfaces.
type (
	UserRepository     = userRepo.UserRepository
	BookingRepository  = bookingRepo.BookingRepository
	PropertyRepository = propertyRepo.PropertyRepository
	WishlistRepository = wishlistRepo.WishlistRepository
)

// RecordStore is the read-only view over users, bookings, properties and
// wishlists used by the assistant. Every call is independent and may fail on its own.
type RecordStore struct {
	Users      UserRepository
	Bookings   BookingRepository
	Properties PropertyRepository
	Wishlists  WishlistRepository
}

// NewMongoRecordStore wires the Mongo repositories of db into a RecordStore.
func NewMongoRecordStore(db *mongo.Database, logger *zap.Logger) *RecordStore {
	return &RecordStore{
		Users:      userRepo.NewMongoUserRepo(db, logger),
		Bookings:   bookingRepo.NewMongoBookingRepo(db, logger),
		Properties: propertyRepo.NewMongoPropertyRepo(db, logger),
		Wishlists:  wishlistRepo.NewMongoWishlistRepo(db, logger),
	}
}

func (s *RecordStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Users.GetByID(ctx, id)
}

func (s *RecordStore) ListRecentBookings(ctx context.Context, userID string, limit int) ([]models.Booking, error) {
	return s.Bookings.ListRecentByUser(ctx, userID, limit)
}

func (s *RecordStore) ListOwnedProperties(ctx context.Context, userID string) ([]models.Property, error) {
	return s.Properties.ListByOwner(ctx, userID)
}

func (s *RecordStore) CountWishlist(ctx context.Context, userID string) (int64, error) {
	return s.Wishlists.CountByUser(ctx, userID)
}

func (s *RecordStore) ListApprovedProperties(ctx context.Context, limit int) ([]models.Property, error) {
	return s.Properties.ListApproved(ctx, limit)
}
