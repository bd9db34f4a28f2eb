package wishlistRepo

import "context"

// WishlistRepository defines read access to wishlist entries.
type WishlistRepository interface {
	CountByUser(ctx context.Context, userID string) (int64, error)
}
