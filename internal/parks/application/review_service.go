package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sngm3741/park-finder/api/internal/parks/domain"
)

type reviewQueryService struct {
	parks   ParkRepository
	reviews ReviewRepository
}

// NewReviewQueryService creates a new ReviewQueryService.
func NewReviewQueryService(parks ParkRepository, reviews ReviewRepository) ReviewQueryService {
	return &reviewQueryService{parks: parks, reviews: reviews}
}

func (s *reviewQueryService) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.Find(ctx, ReviewFilter{})
}

func (s *reviewQueryService) ListByPark(ctx context.Context, parkID string) ([]domain.Review, error) {
	if _, err := s.parks.FindByID(ctx, parkID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, parkNotFound(parkID)
		}
		return nil, err
	}
	return s.reviews.Find(ctx, ReviewFilter{ParkID: parkID})
}

type reviewCommandService struct {
	parks   ParkRepository
	reviews ReviewRepository
}

// NewReviewCommandService creates a new ReviewCommandService.
func NewReviewCommandService(parks ParkRepository, reviews ReviewRepository) ReviewCommandService {
	return &reviewCommandService{parks: parks, reviews: reviews}
}

// Submit stores the review and refreshes the park's rating summary.
func (s *reviewCommandService) Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error) {
	if _, err := s.parks.FindByID(ctx, cmd.ParkID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, parkNotFound(cmd.ParkID)
		}
		return nil, err
	}

	review := &domain.Review{
		ParkID:    cmd.ParkID,
		Username:  cmd.Username,
		Rating:    math.Round(cmd.Rating*2) / 2,
		Body:      cmd.Body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	stats, err := s.reviews.Stats(ctx, cmd.ParkID)
	if err != nil {
		return nil, fmt.Errorf("aggregate review stats: %w", err)
	}
	stats.AverageRating = math.Round(stats.AverageRating*10) / 10
	if err := s.parks.UpdateStats(ctx, cmd.ParkID, stats); err != nil {
		return nil, fmt.Errorf("update park stats: %w", err)
	}
	return review, nil
}
