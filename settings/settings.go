// Package settings provides the runtime flags steering statistics
// collection. Flags live in Mongo so they survive restarts and can be
// flipped from owner commands without a redeploy.
package settings

import (
	"context"
	"errors"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/predaa/martine/internal/database/mongodb"
)

const statsKey = "stats"

// Service exposes the statistics flags.
//
// Lightmode restricts collection to minimal, low-cost counters. Detailed
// enables expensive presence and activity classification. TopGG opts into
// fetching external vote counts.
type Service interface {
	Lightmode(ctx context.Context) (bool, error)
	Detailed(ctx context.Context) (bool, error)
	TopGG(ctx context.Context) (bool, error)

	SetLightmode(ctx context.Context, enabled bool) error
	SetDetailed(ctx context.Context, enabled bool) error
	SetTopGG(ctx context.Context, enabled bool) error
}

type document struct {
	Key       string `bson:"key"`
	Lightmode bool   `bson:"lightmode"`
	Detailed  bool   `bson:"detailed"`
	TopGG     bool   `bson:"topgg"`
}

type settingsService struct {
	db     *mongodb.Mongo
	cache  *cache.Cache
	logger *zap.SugaredLogger
}

func NewService(db *mongodb.Mongo, logger *zap.SugaredLogger) Service {
	return &settingsService{
		db:     db,
		cache:  cache.New(1*time.Minute, 5*time.Minute),
		logger: logger,
	}
}

func (s settingsService) col() *mongo.Collection {
	return s.db.Database.Collection("settings")
}

func (s settingsService) load(ctx context.Context) (*document, error) {
	if cached, ok := s.cache.Get(statsKey); ok {
		return cached.(*document), nil
	}

	var doc document
	err := s.col().FindOne(ctx, bson.M{"key": statsKey}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		doc = document{Key: statsKey}
	case err != nil:
		return nil, err
	}

	s.cache.SetDefault(statsKey, &doc)
	return &doc, nil
}

func (s settingsService) set(ctx context.Context, field string, enabled bool) error {
	_, err := s.col().UpdateOne(
		ctx,
		bson.M{"key": statsKey},
		bson.M{"$set": bson.M{field: enabled}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return err
	}

	s.cache.Delete(statsKey)
	return nil
}

func (s settingsService) Lightmode(ctx context.Context) (bool, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	return doc.Lightmode, nil
}

func (s settingsService) Detailed(ctx context.Context) (bool, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	return doc.Detailed, nil
}

func (s settingsService) TopGG(ctx context.Context) (bool, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	return doc.TopGG, nil
}

func (s settingsService) SetLightmode(ctx context.Context, enabled bool) error {
	return s.set(ctx, "lightmode", enabled)
}

func (s settingsService) SetDetailed(ctx context.Context, enabled bool) error {
	return s.set(ctx, "detailed", enabled)
}

func (s settingsService) SetTopGG(ctx context.Context, enabled bool) error {
	return s.set(ctx, "topgg", enabled)
}
