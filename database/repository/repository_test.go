package repository

import (
	"context"
	"testing"

	"staynest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct{}

func (stubUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return &models.User{ID: id, Name: "Asha"}, nil
}

type stubBookings struct{ limit int }

func (s *stubBookings) ListRecentByUser(ctx context.Context, userID string, limit int) ([]models.Booking, error) {
	s.limit = limit
	return []models.Booking{{UserID: userID}}, nil
}

type stubProperties struct{}

func (stubProperties) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	return []models.Property{{OwnerID: ownerID}}, nil
}

func (stubProperties) ListApproved(ctx context.Context, limit int) ([]models.Property, error) {
	return make([]models.Property, limit), nil
}

type stubWishlists struct{}

func (stubWishlists) CountByUser(ctx context.Context, userID string) (int64, error) {
	return 7, nil
}

func TestRecordStoreDelegates(t *testing.T) {
	bookings := &stubBookings{}
	store := &RecordStore{Users: stubUsers{}, Bookings: bookings, Properties: stubProperties{}, Wishlists: stubWishlists{}}
	ctx := context.Background()

	u, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)

	bs, err := store.ListRecentBookings(ctx, "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, "u1", bs[0].UserID)
	assert.Equal(t, 3, bookings.limit)

	owned, err := store.ListOwnedProperties(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", owned[0].OwnerID)

	n, err := store.CountWishlist(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	approved, err := store.ListApprovedProperties(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, approved, 20)
}
