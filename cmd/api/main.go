package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/park-finder/api/internal/config"
	mongodoc "github.com/sngm3741/park-finder/api/internal/infrastructure/mongo"
	"github.com/sngm3741/park-finder/api/internal/logger"
	"github.com/sngm3741/park-finder/api/internal/metrics"
	"github.com/sngm3741/park-finder/api/internal/server"
)

// Set with -ldflags "-X main.version=... -X main.revision=...".
var (
	version  = "dev"
	revision = ""
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.Build(logger.Config{Component: "api"}, os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   cfg.LogConsole,
		Component: "api",
	}, os.Stdout)

	var store server.Store
	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warn().Msg("using in-memory store; data is lost on restart")
		store = server.MemoryStore()
	default:
		client, err := connectMongo(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("connect mongodb")
		}
		store = server.MongoStore(cfg, client)
	}

	app := server.New(cfg, log, store, metrics.BuildInfo{Version: version, Revision: revision})
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}

func connectMongo(cfg config.Config, log zerolog.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.MongoDatabase)
	if err := mongodoc.EnsureIndexes(ctx, db, cfg.ParkCollection, cfg.ReviewCollection); err != nil {
		log.Warn().Err(err).Msg("ensure indexes")
	}
	log.Info().Str("db", cfg.MongoDatabase).Msg("connected to mongodb")
	return client, nil
}
