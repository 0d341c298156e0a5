package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sngm3741/park-finder/api/internal/parks/application"
	"github.com/sngm3741/park-finder/api/internal/parks/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ParkSequence is the counter name used for park ids.
const ParkSequence = "parks"

// ParkRepository implements application.ParkRepository using MongoDB.
type ParkRepository struct {
	collection *mongo.Collection
	sequences  *SequenceRepository
}

// NewParkRepository creates a new Mongo-backed park repository.
func NewParkRepository(db *mongo.Database, collectionName string, sequences *SequenceRepository) *ParkRepository {
	return &ParkRepository{collection: db.Collection(collectionName), sequences: sequences}
}

// Find returns parks in creation order, restricted to address.city when a city is given.
func (r *ParkRepository) Find(ctx context.Context, filter application.ParkFilter) ([]domain.Park, error) {
	mongoFilter := bson.M{}
	if city := strings.TrimSpace(filter.City); city != "" {
		mongoFilter["address.city"] = city
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, mongoFilter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	parks := make([]domain.Park, 0)
	for cursor.Next(ctx) {
		var doc ParkDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		parks = append(parks, mapParkDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return parks, nil
}

// FindByID returns a single park by its park_<n> identifier.
func (r *ParkRepository) FindByID(ctx context.Context, id string) (*domain.Park, error) {
	var doc ParkDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	park := mapParkDocument(doc)
	return &park, nil
}

// Create draws the next id from the parks counter and inserts the document under it.
func (r *ParkRepository) Create(ctx context.Context, park *domain.Park) error {
	seq, err := r.sequences.Next(ctx, ParkSequence)
	if err != nil {
		return err
	}
	park.ID = fmt.Sprintf("park_%d", seq)

	if _, err := r.collection.InsertOne(ctx, buildParkDocument(park)); err != nil {
		return err
	}
	return nil
}

// Update applies a partial $set and returns the stored park after the change.
func (r *ParkRepository) Update(ctx context.Context, id string, update application.ParkUpdate) (*domain.Park, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc ParkDocument
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": buildParkUpdate(update)}, opts).Decode(&doc)
	if err != nil {
		return nil, translateError(err)
	}
	park := mapParkDocument(doc)
	return &park, nil
}

// UpdateStats overwrites the review summary fields of a park.
func (r *ParkRepository) UpdateStats(ctx context.Context, id string, stats domain.ParkStats) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"current_average_rating": stats.AverageRating,
		"current_review_count":   stats.ReviewCount,
		"updated_at":             time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ParkRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

func translateError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return application.ErrNotFound
	}
	return err
}

func mapParkDocument(doc ParkDocument) domain.Park {
	return domain.Park{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Size:        doc.Size,
		Stats: domain.ParkStats{
			AverageRating: doc.AverageRating,
			ReviewCount:   doc.ReviewCount,
		},
		Features: domain.Features{
			IsFree:              doc.Features.IsFree,
			IsWellLit:           doc.Features.IsWellLit,
			IsFreeParking:       doc.Features.IsFreeParking,
			IsParking:           doc.Features.IsParking,
			HasAgilityEquipment: doc.Features.HasAgilityEquipment,
			IsFullyEnclosed:     doc.Features.IsFullyEnclosed,
			HasDisabledAccess:   doc.Features.HasDisabledAccess,
		},
		OpeningHours: domain.OpeningHours(doc.OpeningHours),
		Address:      domain.Address(doc.Address),
		Location:     domain.Location(doc.Location),
		ImageURL:     doc.ImageURL,
		WebsiteURL:   doc.WebsiteURL,
		PhoneNumber:  doc.PhoneNumber,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func buildParkDocument(park *domain.Park) ParkDocument {
	return ParkDocument{
		ID:            park.ID,
		Name:          park.Name,
		Description:   park.Description,
		Size:          park.Size,
		AverageRating: park.Stats.AverageRating,
		ReviewCount:   park.Stats.ReviewCount,
		Features:      flattenFeatures(park.Features),
		OpeningHours:  OpeningHoursDocument(park.OpeningHours),
		Address:       AddressDocument(park.Address),
		Location:      LocationDocument(park.Location),
		ImageURL:      park.ImageURL,
		WebsiteURL:    park.WebsiteURL,
		PhoneNumber:   park.PhoneNumber,
		CreatedAt:     park.CreatedAt,
		UpdatedAt:     park.UpdatedAt,
	}
}

func flattenFeatures(f domain.Features) FeaturesDocument {
	return FeaturesDocument{
		IsFree:              f.IsFree,
		IsWellLit:           f.IsWellLit,
		IsFreeParking:       f.IsFreeParking,
		IsParking:           f.IsParking,
		HasAgilityEquipment: f.HasAgilityEquipment,
		IsFullyEnclosed:     f.IsFullyEnclosed,
		HasDisabledAccess:   f.HasDisabledAccess,
	}
}

// buildParkUpdate expands the non-nil fields of update into a $set payload.
func buildParkUpdate(update application.ParkUpdate) bson.M {
	payload := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		payload["name"] = *update.Name
	}
	if update.Description != nil {
		payload["desc"] = *update.Description
	}
	if update.Size != nil {
		payload["size"] = *update.Size
	}
	if update.Features != nil {
		payload["features"] = flattenFeatures(*update.Features)
	}
	if update.OpeningHours != nil {
		payload["opening_hours"] = OpeningHoursDocument(*update.OpeningHours)
	}
	if update.Address != nil {
		payload["address"] = AddressDocument(*update.Address)
	}
	if update.Location != nil {
		payload["location"] = LocationDocument(*update.Location)
	}
	if update.ImageURL != nil {
		payload["image_url"] = *update.ImageURL
	}
	if update.WebsiteURL != nil {
		payload["website_url"] = *update.WebsiteURL
	}
	if update.PhoneNumber != nil {
		payload["phone_number"] = *update.PhoneNumber
	}
	return payload
}
