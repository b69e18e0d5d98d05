package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"agroadvisor/advisor"
	"agroadvisor/models"
	"agroadvisor/store"
)

type App struct {
	cfg    Config
	log    *zap.Logger
	db     *store.Mongo
	store  store.Store
	trends advisor.TrendProvider
}

func newApp(ctx context.Context, cfg Config, logger *zap.Logger) (*App, error) {
	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:    cfg,
		log:    logger,
		db:     db,
		store:  db,
		trends: advisor.StaticTrends{},
	}

	// Accounts are looked up by email on login; keep them unique.
	accounts := db.Database().Collection(models.KindFarmerAccount.Collection())
	if _, err := accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return nil, err
	}
	// Soil tests and observations are resolved by farmer_id during analysis.
	for _, kind := range []models.Kind{models.KindSoilTest, models.KindFarmObservation} {
		coll := db.Database().Collection(kind.Collection())
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "farmer_id", Value: 1}},
		}); err != nil {
			return nil, err
		}
	}

	return app, nil
}

func (a *App) close(ctx context.Context) { _ = a.db.Close(ctx) }
