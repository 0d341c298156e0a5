package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	mongodoc "github.com/sngm3741/park-finder/api/internal/infrastructure/mongo"
)

type parkTemplate struct {
	name     string
	desc     string
	city     string
	postCode string
	street   string
	long     float64
	lat      float64
}

var parkTemplates = []parkTemplate{
	{"Cannon Hill Park", "Eighty acres of lawns, lakes and woodland with a riverside walk.", "Birmingham", "B13 8RD", "Russell Road", -1.902585, 52.451420},
	{"Sutton Park", "Heathland, wetland and ancient woodland with seven lakes.", "Birmingham", "B74 2YT", "Park Road", -1.843920, 52.568030},
	{"Roundhay Park", "Open parkland around Waterloo Lake with marked trails.", "Leeds", "LS8 2HH", "Mansion Lane", -1.497580, 53.839670},
	{"Heaton Park", "Large municipal park with a boating lake and open fields.", "Manchester", "M25 2SW", "Middleton Road", -2.254370, 53.534120},
	{"Sefton Park", "Victorian park with a palm house and large meadows.", "Liverpool", "L17 1AP", "Aigburth Drive", -2.936570, 53.381270},
	{"Clifton Downs", "Open grassland above the gorge, popular with dog walkers.", "Bristol", "BS8 3LT", "Stoke Road", -2.620170, 51.467400},
	{"Shelfield Park", "Two full-size football pitches, a ball cage and a soft play area.", "Walsall", "WS4 1RN", "Broad Way", -1.944570, 52.615530},
	{"Victoria Park", "Tree lined paths, a lake and an enclosed dog exercise area.", "Leicester", "LE1 7RY", "University Road", -1.121410, 52.624620},
}

var reviewers = []string{"muddy_paws", "spaniel_sam", "greyhoundgail", "walkies_wendy", "terrier_tom", "collie_carl", "beagle_bex"}

var reviewBodies = []string{
	"Plenty of space to run and the paths stay dry.",
	"Busy at weekends but lovely early in the morning.",
	"Fully fenced area made recall practice easy.",
	"Parking fills up quickly after nine.",
	"Bins everywhere and water bowls by the cafe.",
	"",
}

type statsAccumulator struct {
	reviewCount int
	ratingSum   float64
}

func (a *statsAccumulator) average() float64 {
	if a.reviewCount == 0 {
		return 0
	}
	return round(a.ratingSum/float64(a.reviewCount), 1)
}

func generateParks(rng *rand.Rand, count int, now time.Time) []mongodoc.ParkDocument {
	docs := make([]mongodoc.ParkDocument, 0, count)
	for i := 0; i < count; i++ {
		tpl := parkTemplates[i%len(parkTemplates)]
		name := tpl.name
		if batch := i / len(parkTemplates); batch > 0 {
			name = fmt.Sprintf("%s %d", tpl.name, batch+1)
		}
		created := now.Add(time.Duration(i-count) * time.Minute)
		docs = append(docs, mongodoc.ParkDocument{
			ID:          fmt.Sprintf("park_%d", i+1),
			Name:        name,
			Description: tpl.desc,
			Size:        round(2+rng.Float64()*80, 1),
			Features: mongodoc.FeaturesDocument{
				IsFree:              rng.Intn(4) != 0,
				IsWellLit:           rng.Intn(2) == 0,
				IsFreeParking:       rng.Intn(3) == 0,
				IsParking:           rng.Intn(4) != 0,
				HasAgilityEquipment: rng.Intn(5) == 0,
				IsFullyEnclosed:     rng.Intn(3) == 0,
				HasDisabledAccess:   rng.Intn(2) == 0,
			},
			OpeningHours: openingHours(rng),
			Address: mongodoc.AddressDocument{
				FirstLine:  fmt.Sprintf("%d %s", 1+rng.Intn(120), tpl.street),
				SecondLine: "",
				PostCode:   tpl.postCode,
				City:       tpl.city,
			},
			Location: mongodoc.LocationDocument{
				Longitude: tpl.long,
				Latitude:  tpl.lat,
			},
			ImageURL:    fmt.Sprintf("https://images.example.com/parks/%d.jpg", i+1),
			WebsiteURL:  fmt.Sprintf("https://parks.example.com/park_%d", i+1),
			PhoneNumber: fmt.Sprintf("07%09d", rng.Intn(1_000_000_000)),
			CreatedAt:   created,
			UpdatedAt:   created,
		})
	}
	return docs
}

func openingHours(rng *rand.Rand) mongodoc.OpeningHoursDocument {
	weekday := "7am - 8pm"
	weekend := "8am - 6pm"
	if rng.Intn(3) == 0 {
		weekday, weekend = "Open 24 hours", "Open 24 hours"
	}
	return mongodoc.OpeningHoursDocument{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  weekend,
		Sunday:    weekend,
	}
}

// generateReviews spreads total reviews over parks and returns per-park rating totals.
func generateReviews(rng *rand.Rand, parks []mongodoc.ParkDocument, total int, now time.Time) ([]mongodoc.ReviewDocument, map[string]*statsAccumulator) {
	stats := make(map[string]*statsAccumulator, len(parks))
	if len(parks) == 0 || total <= 0 {
		return nil, stats
	}

	docs := make([]mongodoc.ReviewDocument, 0, total)
	for i := 0; i < total; i++ {
		park := parks[rng.Intn(len(parks))]
		rating := float64(2+rng.Intn(9)) / 2 // 1.0 .. 5.0 in halves
		docs = append(docs, mongodoc.ReviewDocument{
			ID:        fmt.Sprintf("review_%d", i+1),
			ParkID:    park.ID,
			Username:  reviewers[rng.Intn(len(reviewers))],
			Rating:    rating,
			Body:      reviewBodies[rng.Intn(len(reviewBodies))],
			CreatedAt: now.Add(-time.Duration(total-i) * time.Hour),
		})

		agg, ok := stats[park.ID]
		if !ok {
			agg = &statsAccumulator{}
			stats[park.ID] = agg
		}
		agg.reviewCount++
		agg.ratingSum += rating
	}
	return docs, stats
}

func round(val float64, precision int) float64 {
	mul := math.Pow(10, float64(precision))
	return math.Round(val*mul) / mul
}
