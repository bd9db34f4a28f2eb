package propertyRepo

import (
	"context"
	"fmt"
	"time"

	"staynest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo creates a new instance of PropertyRepository using MongoDB.
func NewMongoPropertyRepo(db *mongo.Database, logger *zap.Logger) PropertyRepository {
	repo := &MongoPropertyRepo{coll: db.Collection("properties")}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("failed to create property indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoPropertyRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "rating", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPropertyRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var props []models.Property
	if err := cursor.All(ctx, &props); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	return props, nil
}

// ListByOwner returns the host's properties, newest first.
func (r *MongoPropertyRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	props, err := r.find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties for owner %s: %w", ownerID, err)
	}
	return props, nil
}

// ListApproved returns approved properties ordered by rating.
func (r *MongoPropertyRepo) ListApproved(ctx context.Context, limit int) ([]models.Property, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	props, err := r.find(ctx, bson.M{"status": models.PropertyApproved}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved properties: %w", err)
	}
	return props, nil
}
