package application

import (
	"context"

	"github.com/sngm3741/park-finder/api/internal/parks/domain"
)

// ParkRepository abstracts persistence of parks.
// Implementations return ErrNotFound when the park does not exist.
type ParkRepository interface {
	Find(ctx context.Context, filter ParkFilter) ([]domain.Park, error)
	FindByID(ctx context.Context, id string) (*domain.Park, error)
	Create(ctx context.Context, park *domain.Park) error
	Update(ctx context.Context, id string, update ParkUpdate) (*domain.Park, error)
	UpdateStats(ctx context.Context, id string, stats domain.ParkStats) error
	Delete(ctx context.Context, id string) error
}

// ReviewRepository abstracts persistence of reviews.
type ReviewRepository interface {
	Find(ctx context.Context, filter ReviewFilter) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) error
	Stats(ctx context.Context, parkID string) (domain.ParkStats, error)
	DeleteByPark(ctx context.Context, parkID string) (int64, error)
}

// ParkFilter expresses search criteria for parks.
type ParkFilter struct {
	City string
}

// ReviewFilter expresses search criteria for reviews.
type ReviewFilter struct {
	ParkID string
}

// ParkUpdate is a partial update; nil fields are left untouched.
type ParkUpdate struct {
	Name         *string
	Description  *string
	Size         *float64
	Features     *domain.Features
	OpeningHours *domain.OpeningHours
	Address      *domain.Address
	Location     *domain.Location
	ImageURL     *string
	WebsiteURL   *string
	PhoneNumber  *string
}

// IsEmpty reports whether the update would change nothing.
func (u ParkUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Description == nil &&
		u.Size == nil &&
		u.Features == nil &&
		u.OpeningHours == nil &&
		u.Address == nil &&
		u.Location == nil &&
		u.ImageURL == nil &&
		u.WebsiteURL == nil &&
		u.PhoneNumber == nil
}

// Apply copies the non-nil fields onto park.
func (u ParkUpdate) Apply(park *domain.Park) {
	if u.Name != nil {
		park.Name = *u.Name
	}
	if u.Description != nil {
		park.Description = *u.Description
	}
	if u.Size != nil {
		park.Size = *u.Size
	}
	if u.Features != nil {
		park.Features = *u.Features
	}
	if u.OpeningHours != nil {
		park.OpeningHours = *u.OpeningHours
	}
	if u.Address != nil {
		park.Address = *u.Address
	}
	if u.Location != nil {
		park.Location = *u.Location
	}
	if u.ImageURL != nil {
		park.ImageURL = *u.ImageURL
	}
	if u.WebsiteURL != nil {
		park.WebsiteURL = *u.WebsiteURL
	}
	if u.PhoneNumber != nil {
		park.PhoneNumber = *u.PhoneNumber
	}
}

// ParkQueryService describes park read use-cases.
type ParkQueryService interface {
	List(ctx context.Context, filter ParkFilter) ([]domain.Park, error)
	Detail(ctx context.Context, id string) (*domain.Park, error)
}

// ParkCommandService describes park write use-cases.
type ParkCommandService interface {
	Create(ctx context.Context, cmd CreateParkCommand) (*domain.Park, error)
	Update(ctx context.Context, id string, update ParkUpdate) (*domain.Park, error)
	Delete(ctx context.Context, id string) error
}

// ReviewQueryService describes review read use-cases.
type ReviewQueryService interface {
	List(ctx context.Context) ([]domain.Review, error)
	ListByPark(ctx context.Context, parkID string) ([]domain.Review, error)
}

// ReviewCommandService describes review write use-cases.
type ReviewCommandService interface {
	Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error)
}

// CreateParkCommand captures the client supplied park fields.
type CreateParkCommand struct {
	Name         string
	Description  string
	Size         float64
	Features     domain.Features
	OpeningHours domain.OpeningHours
	Address      domain.Address
	Location     domain.Location
	ImageURL     string
	WebsiteURL   string
	PhoneNumber  string
}

// SubmitReviewCommand captures a new review.
type SubmitReviewCommand struct {
	ParkID   string
	Username string
	Rating   float64
	Body     string
}
