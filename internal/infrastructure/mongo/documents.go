package mongo

import "time"

// ParkDocument is the MongoDB schema of a park. Field names follow the public JSON shape
// so that `address.city` and friends can be queried directly.
type ParkDocument struct {
	ID            string               `bson:"_id"`
	Name          string               `bson:"name"`
	Description   string               `bson:"desc"`
	Size          float64              `bson:"size"`
	AverageRating float64              `bson:"current_average_rating"`
	ReviewCount   int                  `bson:"current_review_count"`
	Features      FeaturesDocument     `bson:"features"`
	OpeningHours  OpeningHoursDocument `bson:"opening_hours"`
	Address       AddressDocument      `bson:"address"`
	Location      LocationDocument     `bson:"location"`
	ImageURL      string               `bson:"image_url"`
	WebsiteURL    string               `bson:"website_url"`
	PhoneNumber   string               `bson:"phone_number"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// FeaturesDocument is embedded in ParkDocument.
type FeaturesDocument struct {
	IsFree              bool `bson:"isFree"`
	IsWellLit           bool `bson:"isWellLit"`
	IsFreeParking       bool `bson:"isFreeParking"`
	IsParking           bool `bson:"isParking"`
	HasAgilityEquipment bool `bson:"hasAgilityEquipment"`
	IsFullyEnclosed     bool `bson:"isFullyEnclosed"`
	HasDisabledAccess   bool `bson:"hasDisabledAccess"`
}

// OpeningHoursDocument is embedded in ParkDocument.
type OpeningHoursDocument struct {
	Monday    string `bson:"monday"`
	Tuesday   string `bson:"tuesday"`
	Wednesday string `bson:"wednesday"`
	Thursday  string `bson:"thursday"`
	Friday    string `bson:"friday"`
	Saturday  string `bson:"saturday"`
	Sunday    string `bson:"sunday"`
}

// AddressDocument is embedded in ParkDocument.
type AddressDocument struct {
	FirstLine  string `bson:"firstLine"`
	SecondLine string `bson:"secondLine"`
	PostCode   string `bson:"postCode"`
	City       string `bson:"city"`
}

// LocationDocument stores coordinates as doubles.
type LocationDocument struct {
	Longitude float64 `bson:"long"`
	Latitude  float64 `bson:"lat"`
}

// ReviewDocument is the MongoDB schema of a review.
type ReviewDocument struct {
	ID        string    `bson:"_id"`
	ParkID    string    `bson:"park_id"`
	Username  string    `bson:"username"`
	Rating    float64   `bson:"rating"`
	Body      string    `bson:"body,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

// SequenceDocument is a named counter used to hand out sequential ids.
type SequenceDocument struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}
