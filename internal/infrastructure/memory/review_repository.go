package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sngm3741/park-finder/api/internal/parks/application"
	"github.com/sngm3741/park-finder/api/internal/parks/domain"
)

type reviewEntry struct {
	review domain.Review
	seq    int
}

// ReviewRepository implements application.ReviewRepository. Safe for concurrent use.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]reviewEntry
	seq     int
}

// NewReviewRepository creates an empty in-memory review repository.
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: make(map[string]reviewEntry)}
}

// Find returns reviews newest first.
func (r *ReviewRepository) Find(_ context.Context, filter application.ReviewFilter) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]reviewEntry, 0, len(r.reviews))
	for _, entry := range r.reviews {
		if filter.ParkID != "" && entry.review.ParkID != filter.ParkID {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].review.CreatedAt.Equal(entries[j].review.CreatedAt) {
			return entries[i].seq > entries[j].seq
		}
		return entries[i].review.CreatedAt.After(entries[j].review.CreatedAt)
	})

	reviews := make([]domain.Review, 0, len(entries))
	for _, entry := range entries {
		reviews = append(reviews, entry.review)
	}
	return reviews, nil
}

// Create assigns the next review_<n> id and stores a copy of review.
func (r *ReviewRepository) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	review.ID = fmt.Sprintf("review_%d", r.seq)
	r.reviews[review.ID] = reviewEntry{review: *review, seq: r.seq}
	return nil
}

// Stats returns the review count and mean rating for a park.
func (r *ReviewRepository) Stats(_ context.Context, parkID string) (domain.ParkStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats domain.ParkStats
	var sum float64
	for _, entry := range r.reviews {
		if entry.review.ParkID != parkID {
			continue
		}
		stats.ReviewCount++
		sum += entry.review.Rating
	}
	if stats.ReviewCount > 0 {
		stats.AverageRating = sum / float64(stats.ReviewCount)
	}
	return stats, nil
}

func (r *ReviewRepository) DeleteByPark(_ context.Context, parkID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, entry := range r.reviews {
		if entry.review.ParkID == parkID {
			delete(r.reviews, id)
			deleted++
		}
	}
	return deleted, nil
}
