package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/park-finder/api/internal/config"
	mongodoc "github.com/sngm3741/park-finder/api/internal/infrastructure/mongo"
	"github.com/sngm3741/park-finder/api/internal/logger"
)

type seedOptions struct {
	parkCount       int
	reviewCount     int
	dropCollections bool
	randomSeed      int64
}

func main() {
	opts := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.Build(logger.Config{Component: "seed"}, os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}
	log := logger.Build(logger.Config{Level: cfg.LogLevel, Console: true, Component: "seed"}, os.Stdout)

	if opts.parkCount <= 0 {
		log.Fatal().Int("parks", opts.parkCount).Msg("parks must be at least 1")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(cfg.MongoDatabase)

	if opts.dropCollections {
		dropCollections(ctx, db, log, cfg.ParkCollection, cfg.ReviewCollection, cfg.CounterCollection)
		log.Info().Msg("dropped existing collections")
	}

	if err := mongodoc.EnsureIndexes(ctx, db, cfg.ParkCollection, cfg.ReviewCollection); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))
	now := time.Now().UTC()

	parks := generateParks(rng, opts.parkCount, now)
	if err := insertMany(ctx, db.Collection(cfg.ParkCollection), toAnySlice(parks)); err != nil {
		log.Fatal().Err(err).Msg("insert parks")
	}

	reviews, stats := generateReviews(rng, parks, opts.reviewCount, now)
	if err := insertMany(ctx, db.Collection(cfg.ReviewCollection), toAnySlice(reviews)); err != nil {
		log.Fatal().Err(err).Msg("insert reviews")
	}
	if err := applyStats(ctx, db.Collection(cfg.ParkCollection), stats); err != nil {
		log.Fatal().Err(err).Msg("apply review stats")
	}

	sequences := mongodoc.NewSequenceRepository(db, cfg.CounterCollection)
	if err := sequences.Reset(ctx, mongodoc.ParkSequence, int64(len(parks))); err != nil {
		log.Fatal().Err(err).Msg("reset park counter")
	}
	if err := sequences.Reset(ctx, mongodoc.ReviewSequence, int64(len(reviews))); err != nil {
		log.Fatal().Err(err).Msg("reset review counter")
	}

	log.Info().
		Int("parks", len(parks)).
		Int("reviews", len(reviews)).
		Str("db", cfg.MongoDatabase).
		Int64("seed", opts.randomSeed).
		Msg("seed complete")
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.IntVar(&opts.parkCount, "parks", 6, "number of parks to generate")
	flag.IntVar(&opts.reviewCount, "reviews", 24, "number of reviews spread across the parks")
	flag.BoolVar(&opts.dropCollections, "drop", true, "drop existing collections before inserting")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed, for reproducible data")
	flag.Parse()

	if opts.reviewCount < 0 {
		opts.reviewCount = 0
	}
	return opts
}

func dropCollections(ctx context.Context, db *mongo.Database, log zerolog.Logger, names ...string) {
	for _, name := range names {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("drop collection")
		}
	}
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func applyStats(ctx context.Context, col *mongo.Collection, stats map[string]*statsAccumulator) error {
	now := time.Now().UTC()
	for id, agg := range stats {
		if agg.reviewCount == 0 {
			continue
		}
		update := bson.M{
			"current_review_count":   agg.reviewCount,
			"current_average_rating": agg.average(),
			"updated_at":             now,
		}
		if _, err := col.UpdateByID(ctx, id, bson.M{"$set": update}); err != nil {
			return fmt.Errorf("update stats of %s: %w", id, err)
		}
	}
	return nil
}

func toAnySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
