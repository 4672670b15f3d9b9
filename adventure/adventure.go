// Package adventure exposes read access to the adventure game plugin's
// persisted save records. The plugin is optional; a bot built without it
// simply has no adventure service wired in.
package adventure

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/predaa/martine/internal/database/mongodb"
)

// Service reads raw adventure saves. Records are arbitrary nested mappings:
// the plugin evolved its schema over the years and old saves are missing
// whole sub-records, so consumers backfill defaults themselves.
type Service interface {
	AllUsers(ctx context.Context) (map[string]map[string]any, error)
}

type adventureService struct {
	db     *mongodb.Mongo
	logger *zap.SugaredLogger
}

func NewService(db *mongodb.Mongo, logger *zap.SugaredLogger) Service {
	return &adventureService{db, logger}
}

func (a adventureService) col() *mongo.Collection {
	return a.db.Database.Collection("adventure_users")
}

func (a adventureService) AllUsers(ctx context.Context) (map[string]map[string]any, error) {
	cur, err := a.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make(map[string]map[string]any, len(docs))
	for _, doc := range docs {
		id, ok := doc["user_id"].(string)
		if !ok {
			continue
		}

		record := make(map[string]any, len(doc))
		for key, value := range doc {
			if key == "_id" || key == "user_id" {
				continue
			}

			record[key] = normalize(value)
		}

		users[id] = record
	}

	return users, nil
}

// normalize converts bson documents to plain maps so consumers see ordinary
// nested mappings regardless of how the driver decoded them.
func normalize(value any) any {
	switch v := value.(type) {
	case bson.M:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = normalize(inner)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(v))
		for _, elem := range v {
			out[elem.Key] = normalize(elem.Value)
		}
		return out
	default:
		return value
	}
}
