package main

import (
	"math/rand"
	"strconv"
	"testing"
	"time"
)

func TestGenerateParksAssignsSequentialIDs(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	parks := generateParks(rand.New(rand.NewSource(1)), 10, now)

	if len(parks) != 10 {
		t.Fatalf("len=%d want 10", len(parks))
	}
	seen := map[string]bool{}
	for i, park := range parks {
		if want := "park_" + strconv.Itoa(i+1); park.ID != want {
			t.Fatalf("parks[%d].ID=%q want %q", i, park.ID, want)
		}
		if seen[park.Name] {
			t.Fatalf("duplicate park name %q", park.Name)
		}
		seen[park.Name] = true
		if park.Address.City == "" || park.OpeningHours.Monday == "" {
			t.Fatalf("incomplete park: %+v", park)
		}
		if i > 0 && !parks[i-1].CreatedAt.Before(park.CreatedAt) {
			t.Fatalf("created_at not increasing at %d", i)
		}
	}
}

func TestGenerateReviewsStats(t *testing.T) {
	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(42))
	parks := generateParks(rng, 3, now)
	reviews, stats := generateReviews(rng, parks, 30, now)

	if len(reviews) != 30 {
		t.Fatalf("len=%d want 30", len(reviews))
	}

	counts := map[string]int{}
	sums := map[string]float64{}
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			t.Fatalf("rating %v out of range", r.Rating)
		}
		if r.Rating*2 != float64(int(r.Rating*2)) {
			t.Fatalf("rating %v is not a half step", r.Rating)
		}
		counts[r.ParkID]++
		sums[r.ParkID] += r.Rating
	}

	total := 0
	for id, agg := range stats {
		if agg.reviewCount != counts[id] {
			t.Fatalf("%s count=%d want %d", id, agg.reviewCount, counts[id])
		}
		if want := round(sums[id]/float64(counts[id]), 1); agg.average() != want {
			t.Fatalf("%s average=%v want %v", id, agg.average(), want)
		}
		total += agg.reviewCount
	}
	if total != 30 {
		t.Fatalf("stats cover %d reviews want 30", total)
	}
}

func TestGenerateReviewsWithoutParks(t *testing.T) {
	reviews, stats := generateReviews(rand.New(rand.NewSource(1)), nil, 5, time.Now())
	if len(reviews) != 0 || len(stats) != 0 {
		t.Fatalf("expected nothing, got %d reviews %d stats", len(reviews), len(stats))
	}
}
