package wishlistRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoWishlistRepo implements WishlistRepository using MongoDB.
type MongoWishlistRepo struct {
	coll *mongo.Collection
}

func NewMongoWishlistRepo(db *mongo.Database, logger *zap.Logger) WishlistRepository {
	repo := &MongoWishlistRepo{coll: db.Collection("wishlists")}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "property_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn("failed to create wishlist indexes", zap.Error(err))
	}
	return repo
}

// CountByUser counts the properties saved by the user.
func (r *MongoWishlistRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count wishlist for user %s: %w", userID, err)
	}
	return n, nil
}
