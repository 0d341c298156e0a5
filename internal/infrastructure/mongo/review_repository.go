package mongo

import (
	"context"
	"fmt"
	"strings"

	"github.com/sngm3741/park-finder/api/internal/parks/application"
	"github.com/sngm3741/park-finder/api/internal/parks/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewSequence is the counter name used for review ids.
const ReviewSequence = "reviews"

// ReviewRepository implements application.ReviewRepository using MongoDB.
type ReviewRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

// NewReviewRepository creates a new Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database, collectionName string, sequences *SequenceRepository) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName), sequences: sequences}
}

// Find returns reviews newest first, optionally restricted to one park.
func (r *ReviewRepository) Find(ctx context.Context, filter application.ReviewFilter) ([]domain.Review, error) {
	mongoFilter := bson.M{}
	if parkID := strings.TrimSpace(filter.ParkID); parkID != "" {
		mongoFilter["park_id"] = parkID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, domain.Review(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create draws the next id from the reviews counter and inserts the review.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	seq, err := r.sequences.Next(ctx, ReviewSequence)
	if err != nil {
		return err
	}
	review.ID = fmt.Sprintf("review_%d", seq)

	_, err = r.collection.InsertOne(ctx, ReviewDocument(*review))
	return err
}

// Stats aggregates the review count and mean rating of a park.
func (r *ReviewRepository) Stats(ctx context.Context, parkID string) (domain.ParkStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"park_id": parkID}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"reviewCount": bson.M{"$sum": 1},
			"avgRating":   bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.ParkStats{}, err
	}
	defer cursor.Close(ctx)

	var stats domain.ParkStats
	if cursor.Next(ctx) {
		var agg struct {
			ReviewCount int      `bson:"reviewCount"`
			AvgRating   *float64 `bson:"avgRating"`
		}
		if err := cursor.Decode(&agg); err != nil {
			return domain.ParkStats{}, err
		}
		stats.ReviewCount = agg.ReviewCount
		if agg.AvgRating != nil {
			stats.AverageRating = *agg.AvgRating
		}
	}
	return stats, cursor.Err()
}

// DeleteByPark removes every review of a park and reports how many were removed.
func (r *ReviewRepository) DeleteByPark(ctx context.Context, parkID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"park_id": parkID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
