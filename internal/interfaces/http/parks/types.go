package parks

import (
	"errors"
	"strings"
	"time"

	"github.com/sngm3741/park-finder/api/internal/interfaces/http/common"
	"github.com/sngm3741/park-finder/api/internal/parks/application"
	"github.com/sngm3741/park-finder/api/internal/parks/domain"
)

type featuresPayload struct {
	IsFree              bool `json:"isFree"`
	IsWellLit           bool `json:"isWellLit"`
	IsFreeParking       bool `json:"isFreeParking"`
	IsParking           bool `json:"isParking"`
	HasAgilityEquipment bool `json:"hasAgilityEquipment"`
	IsFullyEnclosed     bool `json:"isFullyEnclosed"`
	HasDisabledAccess   bool `json:"hasDisabledAccess"`
}

type openingHoursPayload struct {
	Monday    string `json:"monday" validate:"max=100"`
	Tuesday   string `json:"tuesday" validate:"max=100"`
	Wednesday string `json:"wednesday" validate:"max=100"`
	Thursday  string `json:"thursday" validate:"max=100"`
	Friday    string `json:"friday" validate:"max=100"`
	Saturday  string `json:"saturday" validate:"max=100"`
	Sunday    string `json:"sunday" validate:"max=100"`
}

type addressPayload struct {
	FirstLine  string `json:"firstLine" validate:"max=200"`
	SecondLine string `json:"secondLine" validate:"max=200"`
	PostCode   string `json:"postCode" validate:"max=20"`
	City       string `json:"city" validate:"max=100"`
}

type locationPayload struct {
	Longitude common.Float `json:"long" validate:"gte=-180,lte=180"`
	Latitude  common.Float `json:"lat" validate:"gte=-90,lte=90"`
}

func (l locationPayload) toDomain() domain.Location {
	return domain.Location{Longitude: float64(l.Longitude), Latitude: float64(l.Latitude)}
}

type createParkRequest struct {
	Name         string              `json:"name" validate:"required,max=200"`
	Description  string              `json:"desc" validate:"max=4000"`
	Size         float64             `json:"size" validate:"gte=0"`
	Features     featuresPayload     `json:"features"`
	OpeningHours openingHoursPayload `json:"opening_hours"`
	Address      addressPayload      `json:"address"`
	Location     locationPayload     `json:"location"`
	ImageURL     string              `json:"image_url" validate:"max=2048"`
	WebsiteURL   string              `json:"website_url" validate:"max=2048"`
	PhoneNumber  string              `json:"phone_number" validate:"max=32"`
}

func (req *createParkRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Address.City = strings.TrimSpace(req.Address.City)
}

func (req createParkRequest) toCommand() application.CreateParkCommand {
	return application.CreateParkCommand{
		Name:         req.Name,
		Description:  req.Description,
		Size:         req.Size,
		Features:     domain.Features(req.Features),
		OpeningHours: domain.OpeningHours(req.OpeningHours),
		Address:      domain.Address(req.Address),
		Location:     req.Location.toDomain(),
		ImageURL:     req.ImageURL,
		WebsiteURL:   req.WebsiteURL,
		PhoneNumber:  req.PhoneNumber,
	}
}

// updateParkRequest carries a PATCH body; absent fields stay nil.
type updateParkRequest struct {
	Name         *string              `json:"name" validate:"omitempty,max=200"`
	Description  *string              `json:"desc" validate:"omitempty,max=4000"`
	Size         *float64             `json:"size" validate:"omitempty,gte=0"`
	Features     *featuresPayload     `json:"features"`
	OpeningHours *openingHoursPayload `json:"opening_hours"`
	Address      *addressPayload      `json:"address"`
	Location     *locationPayload     `json:"location"`
	ImageURL     *string              `json:"image_url" validate:"omitempty,max=2048"`
	WebsiteURL   *string              `json:"website_url" validate:"omitempty,max=2048"`
	PhoneNumber  *string              `json:"phone_number" validate:"omitempty,max=32"`
}

var errEmptyName = errors.New("name must not be empty")

func (req *updateParkRequest) normalize() error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return errEmptyName
		}
		req.Name = &name
	}
	if req.Address != nil {
		req.Address.City = strings.TrimSpace(req.Address.City)
	}
	return nil
}

func (req updateParkRequest) toUpdate() application.ParkUpdate {
	update := application.ParkUpdate{
		Name:        req.Name,
		Description: req.Description,
		Size:        req.Size,
		ImageURL:    req.ImageURL,
		WebsiteURL:  req.WebsiteURL,
		PhoneNumber: req.PhoneNumber,
	}
	if req.Features != nil {
		features := domain.Features(*req.Features)
		update.Features = &features
	}
	if req.OpeningHours != nil {
		hours := domain.OpeningHours(*req.OpeningHours)
		update.OpeningHours = &hours
	}
	if req.Address != nil {
		address := domain.Address(*req.Address)
		update.Address = &address
	}
	if req.Location != nil {
		location := req.Location.toDomain()
		update.Location = &location
	}
	return update
}

type parkResponse struct {
	ID            string              `json:"park_id"`
	Name          string              `json:"name"`
	Description   string              `json:"desc"`
	Size          float64             `json:"size"`
	AverageRating float64             `json:"current_average_rating"`
	ReviewCount   int                 `json:"current_review_count"`
	Features      featuresPayload     `json:"features"`
	OpeningHours  openingHoursPayload `json:"opening_hours"`
	Address       addressPayload      `json:"address"`
	Location      locationPayload     `json:"location"`
	ImageURL      string              `json:"image_url"`
	WebsiteURL    string              `json:"website_url"`
	PhoneNumber   string              `json:"phone_number"`
}

func buildParkResponse(park domain.Park) parkResponse {
	return parkResponse{
		ID:            park.ID,
		Name:          park.Name,
		Description:   park.Description,
		Size:          park.Size,
		AverageRating: park.Stats.AverageRating,
		ReviewCount:   park.Stats.ReviewCount,
		Features:      featuresPayload(park.Features),
		OpeningHours:  openingHoursPayload(park.OpeningHours),
		Address:       addressPayload(park.Address),
		Location: locationPayload{
			Longitude: common.Float(park.Location.Longitude),
			Latitude:  common.Float(park.Location.Latitude),
		},
		ImageURL:    park.ImageURL,
		WebsiteURL:  park.WebsiteURL,
		PhoneNumber: park.PhoneNumber,
	}
}

type createReviewRequest struct {
	ParkID   string  `json:"park_id" validate:"required,max=64"`
	Username string  `json:"username" validate:"required,max=64"`
	Rating   float64 `json:"rating" validate:"gte=1,lte=5"`
	Body     string  `json:"body" validate:"max=2000"`
}

func (req *createReviewRequest) normalize() {
	req.ParkID = strings.TrimSpace(req.ParkID)
	req.Username = strings.TrimSpace(req.Username)
	req.Body = strings.TrimSpace(req.Body)
}

func (req createReviewRequest) toCommand() application.SubmitReviewCommand {
	return application.SubmitReviewCommand{
		ParkID:   req.ParkID,
		Username: req.Username,
		Rating:   req.Rating,
		Body:     req.Body,
	}
}

type reviewResponse struct {
	ID        string  `json:"review_id"`
	ParkID    string  `json:"park_id"`
	Username  string  `json:"username"`
	Rating    float64 `json:"rating"`
	Body      string  `json:"body"`
	CreatedAt string  `json:"created_at"`
}

func buildReviewResponse(review domain.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID,
		ParkID:    review.ParkID,
		Username:  review.Username,
		Rating:    review.Rating,
		Body:      review.Body,
		CreatedAt: review.CreatedAt.UTC().Format(time.RFC3339),
	}
}
