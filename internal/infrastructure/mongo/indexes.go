package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories filter and sort by.
// Existing indexes with the same definition are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database, parkCollection, reviewCollection string) error {
	parkIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "address.city", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_park_city_created"),
		},
	}
	if _, err := db.Collection(parkCollection).Indexes().CreateMany(ctx, parkIndexes); err != nil {
		return fmt.Errorf("create %s indexes: %w", parkCollection, err)
	}

	reviewIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "park_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_review_park_created"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_review_created"),
		},
	}
	if _, err := db.Collection(reviewCollection).Indexes().CreateMany(ctx, reviewIndexes); err != nil {
		return fmt.Errorf("create %s indexes: %w", reviewCollection, err)
	}
	return nil
}
