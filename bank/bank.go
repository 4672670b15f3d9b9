// Package bank exposes read access to the banking subsystem's per-user
// balance records.
package bank

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/predaa/martine/internal/database/mongodb"
)

type Account struct {
	UserID  string `json:"user_id" bson:"user_id"`
	Balance int64  `json:"balance" bson:"balance"`
}

type Service interface {
	AllAccounts(ctx context.Context) ([]Account, error)
}

type bankService struct {
	db     *mongodb.Mongo
	logger *zap.SugaredLogger
}

func NewService(db *mongodb.Mongo, logger *zap.SugaredLogger) Service {
	return &bankService{db, logger}
}

func (b bankService) col() *mongo.Collection {
	return b.db.Database.Collection("bank_accounts")
}

func (b bankService) AllAccounts(ctx context.Context) ([]Account, error) {
	cur, err := b.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := cur.All(ctx, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}
