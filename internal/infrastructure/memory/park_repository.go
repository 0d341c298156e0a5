// Package memory keeps parks and reviews in process memory. Data is lost on restart.
// It backs local development without a MongoDB instance and the HTTP tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sngm3741/park-finder/api/internal/parks/application"
	"github.com/sngm3741/park-finder/api/internal/parks/domain"
)

type parkEntry struct {
	park domain.Park
	seq  int
}

// ParkRepository implements application.ParkRepository. Safe for concurrent use.
type ParkRepository struct {
	mu    sync.RWMutex
	parks map[string]parkEntry
	seq   int
}

// NewParkRepository creates an empty in-memory park repository.
func NewParkRepository() *ParkRepository {
	return &ParkRepository{parks: make(map[string]parkEntry)}
}

// Find returns parks in insertion order, optionally restricted to one city.
func (r *ParkRepository) Find(_ context.Context, filter application.ParkFilter) ([]domain.Park, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]parkEntry, 0, len(r.parks))
	for _, entry := range r.parks {
		if filter.City != "" && entry.park.Address.City != filter.City {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	parks := make([]domain.Park, 0, len(entries))
	for _, entry := range entries {
		parks = append(parks, entry.park)
	}
	return parks, nil
}

func (r *ParkRepository) FindByID(_ context.Context, id string) (*domain.Park, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.parks[id]
	if !ok {
		return nil, application.ErrNotFound
	}
	park := entry.park
	return &park, nil
}

// Create assigns the next park_<n> id and stores a copy of park.
func (r *ParkRepository) Create(_ context.Context, park *domain.Park) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	park.ID = fmt.Sprintf("park_%d", r.seq)
	r.parks[park.ID] = parkEntry{park: *park, seq: r.seq}
	return nil
}

func (r *ParkRepository) Update(_ context.Context, id string, update application.ParkUpdate) (*domain.Park, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.parks[id]
	if !ok {
		return nil, application.ErrNotFound
	}
	update.Apply(&entry.park)
	entry.park.UpdatedAt = time.Now().UTC()
	r.parks[id] = entry
	park := entry.park
	return &park, nil
}

func (r *ParkRepository) UpdateStats(_ context.Context, id string, stats domain.ParkStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.parks[id]
	if !ok {
		return application.ErrNotFound
	}
	entry.park.Stats = stats
	entry.park.UpdatedAt = time.Now().UTC()
	r.parks[id] = entry
	return nil
}

func (r *ParkRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parks[id]; !ok {
		return application.ErrNotFound
	}
	delete(r.parks, id)
	return nil
}
