package server

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sngm3741/park-finder/api/internal/config"
	"github.com/sngm3741/park-finder/api/internal/infrastructure/memory"
	mongodoc "github.com/sngm3741/park-finder/api/internal/infrastructure/mongo"
	"github.com/sngm3741/park-finder/api/internal/parks/application"
)

// Store bundles the repositories the API runs against with the hooks the
// server needs for health checks and shutdown.
type Store struct {
	Parks   application.ParkRepository
	Reviews application.ReviewRepository
	Ping    func(ctx context.Context) error
	Close   func(ctx context.Context) error
}

// MongoStore wires the mongo repositories onto the configured database.
func MongoStore(cfg config.Config, client *mongo.Client) Store {
	db := client.Database(cfg.MongoDatabase)
	sequences := mongodoc.NewSequenceRepository(db, cfg.CounterCollection)
	return Store{
		Parks:   mongodoc.NewParkRepository(db, cfg.ParkCollection, sequences),
		Reviews: mongodoc.NewReviewRepository(db, cfg.ReviewCollection, sequences),
		Ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		Close: client.Disconnect,
	}
}

// MemoryStore keeps everything in process; data is lost on restart.
func MemoryStore() Store {
	return Store{
		Parks:   memory.NewParkRepository(),
		Reviews: memory.NewReviewRepository(),
	}
}
