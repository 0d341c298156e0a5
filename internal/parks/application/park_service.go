package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sngm3741/park-finder/api/internal/parks/domain"
)

type parkQueryService struct {
	repo ParkRepository
}

// NewParkQueryService creates a new ParkQueryService.
func NewParkQueryService(repo ParkRepository) ParkQueryService {
	return &parkQueryService{repo: repo}
}

func (s *parkQueryService) List(ctx context.Context, filter ParkFilter) ([]domain.Park, error) {
	parks, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(parks) == 0 {
		return nil, notFound("Parks collection not found")
	}
	return parks, nil
}

func (s *parkQueryService) Detail(ctx context.Context, id string) (*domain.Park, error) {
	park, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, parkNotFound(id)
	}
	return park, err
}

type parkCommandService struct {
	parks   ParkRepository
	reviews ReviewRepository
}

// NewParkCommandService creates a new ParkCommandService.
func NewParkCommandService(parks ParkRepository, reviews ReviewRepository) ParkCommandService {
	return &parkCommandService{parks: parks, reviews: reviews}
}

func (s *parkCommandService) Create(ctx context.Context, cmd CreateParkCommand) (*domain.Park, error) {
	now := time.Now().UTC()
	park := &domain.Park{
		Name:         cmd.Name,
		Description:  cmd.Description,
		Size:         cmd.Size,
		Features:     cmd.Features,
		OpeningHours: cmd.OpeningHours,
		Address:      cmd.Address,
		Location:     cmd.Location,
		ImageURL:     cmd.ImageURL,
		WebsiteURL:   cmd.WebsiteURL,
		PhoneNumber:  cmd.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.parks.Create(ctx, park); err != nil {
		return nil, err
	}
	return park, nil
}

func (s *parkCommandService) Update(ctx context.Context, id string, update ParkUpdate) (*domain.Park, error) {
	park, err := s.parks.Update(ctx, id, update)
	if errors.Is(err, ErrNotFound) {
		return nil, parkNotFound(id)
	}
	return park, err
}

func (s *parkCommandService) Delete(ctx context.Context, id string) error {
	if err := s.parks.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return parkNotFound(id)
		}
		return err
	}
	if _, err := s.reviews.DeleteByPark(ctx, id); err != nil {
		return fmt.Errorf("delete reviews of %s: %w", id, err)
	}
	return nil
}

func parkNotFound(id string) error {
	return notFound(fmt.Sprintf("No park found for park_id: %s", id))
}
