package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/sngm3741/park-finder/api/internal/parks/application"
	"github.com/sngm3741/park-finder/api/internal/parks/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testParksNS = "park-finder.parks"

func newTestParkRepository(mt *mtest.T) *ParkRepository {
	return NewParkRepository(mt.DB, "parks", NewSequenceRepository(mt.DB, "counters"))
}

func TestParkRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testParksNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "park_1"},
			{Key: "name", Value: "Cannon Hill Park"},
			{Key: "size", Value: 32.5},
			{Key: "current_review_count", Value: 3},
			{Key: "address", Value: bson.D{{Key: "city", Value: "Birmingham"}}},
			{Key: "location", Value: bson.D{{Key: "long", Value: -1.902585}, {Key: "lat", Value: 52.498464}}},
		}))

		park, err := repo.FindByID(context.Background(), "park_1")
		if err != nil {
			mt.Fatalf("unexpected err: %v", err)
		}
		if park.ID != "park_1" || park.Name != "Cannon Hill Park" {
			mt.Fatalf("got %+v", park)
		}
		if park.Address.City != "Birmingham" {
			mt.Fatalf("city=%q want Birmingham", park.Address.City)
		}
		if park.Location.Latitude != 52.498464 || park.Location.Longitude != -1.902585 {
			mt.Fatalf("location=%+v", park.Location)
		}
		if park.Stats.ReviewCount != 3 {
			mt.Fatalf("review count=%d want 3", park.Stats.ReviewCount)
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testParksNS, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "park_404")
		if !errors.Is(err, application.ErrNotFound) {
			mt.Fatalf("err=%v want ErrNotFound", err)
		}
	})
}

func TestParkRepository_Find(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes every document", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testParksNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "park_1"}, {Key: "name", Value: "A"}, {Key: "address", Value: bson.D{{Key: "city", Value: "Leeds"}}}},
			bson.D{{Key: "_id", Value: "park_2"}, {Key: "name", Value: "B"}, {Key: "address", Value: bson.D{{Key: "city", Value: "Leeds"}}}},
		))

		parks, err := repo.Find(context.Background(), application.ParkFilter{City: "Leeds"})
		if err != nil {
			mt.Fatalf("unexpected err: %v", err)
		}
		if len(parks) != 2 {
			mt.Fatalf("len=%d want 2", len(parks))
		}
		if parks[0].ID != "park_1" || parks[1].ID != "park_2" {
			mt.Fatalf("ids=%q,%q", parks[0].ID, parks[1].ID)
		}
	})

	mt.Run("empty result is not an error", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testParksNS, mtest.FirstBatch))

		parks, err := repo.Find(context.Background(), application.ParkFilter{City: "Nowhere"})
		if err != nil {
			mt.Fatalf("unexpected err: %v", err)
		}
		if len(parks) != 0 {
			mt.Fatalf("len=%d want 0", len(parks))
		}
	})
}

func TestParkRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("uses the counter value as id", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: ParkSequence},
				{Key: "seq", Value: int64(7)},
			}}),
			mtest.CreateSuccessResponse(),
		)

		park := &domain.Park{Name: "Shelfield Park"}
		if err := repo.Create(context.Background(), park); err != nil {
			mt.Fatalf("unexpected err: %v", err)
		}
		if park.ID != "park_7" {
			mt.Fatalf("id=%q want park_7", park.ID)
		}
	})

	mt.Run("counter failure aborts the insert", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key",
			Name:    "DuplicateKey",
		}))

		park := &domain.Park{Name: "Shelfield Park"}
		if err := repo.Create(context.Background(), park); err == nil {
			mt.Fatal("expected error")
		}
		if park.ID != "" {
			mt.Fatalf("id=%q want empty", park.ID)
		}
	})
}

func TestParkRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		if err := repo.Delete(context.Background(), "park_1"); err != nil {
			mt.Fatalf("unexpected err: %v", err)
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), "non_existent_park_id")
		if !errors.Is(err, application.ErrNotFound) {
			mt.Fatalf("err=%v want ErrNotFound", err)
		}
	})
}

func TestParkRepository_UpdateStatsMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no match", func(mt *mtest.T) {
		repo := newTestParkRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateStats(context.Background(), "park_9", domain.ParkStats{ReviewCount: 1, AverageRating: 4})
		if !errors.Is(err, application.ErrNotFound) {
			mt.Fatalf("err=%v want ErrNotFound", err)
		}
	})
}

func TestBuildParkUpdate(t *testing.T) {
	name := "Renamed"
	size := 4.0
	payload := buildParkUpdate(application.ParkUpdate{
		Name:    &name,
		Size:    &size,
		Address: &domain.Address{City: "Walsall"},
	})

	if payload["name"] != "Renamed" {
		t.Fatalf("name=%v", payload["name"])
	}
	if payload["size"] != 4.0 {
		t.Fatalf("size=%v", payload["size"])
	}
	addr, ok := payload["address"].(AddressDocument)
	if !ok || addr.City != "Walsall" {
		t.Fatalf("address=%#v", payload["address"])
	}
	if _, ok := payload["desc"]; ok {
		t.Fatal("desc must not be set when nil")
	}
	if _, ok := payload["updated_at"]; !ok {
		t.Fatal("updated_at must always be set")
	}
}
