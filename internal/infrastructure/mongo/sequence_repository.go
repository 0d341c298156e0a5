package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceRepository hands out monotonically increasing numbers per name.
// Each call is a single atomic findAndModify, so concurrent callers never share a value.
type SequenceRepository struct {
	collection *mongo.Collection
}

// NewSequenceRepository binds the counters collection.
func NewSequenceRepository(db *mongo.Database, collectionName string) *SequenceRepository {
	return &SequenceRepository{collection: db.Collection(collectionName)}
}

// Next increments the named counter, creating it on first use, and returns the new value.
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc SequenceDocument
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next %s sequence: %w", name, err)
	}
	return doc.Seq, nil
}

// Reset sets the named counter so that the next call to Next returns value+1.
func (r *SequenceRepository) Reset(ctx context.Context, name string, value int64) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": name}, bson.M{"$set": bson.M{"seq": value}}, opts)
	return err
}
