package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sugarsense/internal/model"
)

// activeConfigID keys the single active experience configuration document
const activeConfigID = "active"

type ConfigRepo interface {
	GetActive(ctx context.Context) (*model.ExperienceConfig, error)
	SaveActive(ctx context.Context, cfg *model.ExperienceConfig) error
}

type configRepo struct {
	collection *mongo.Collection
}

func NewConfigRepo(db *mongo.Database) ConfigRepo {
	return &configRepo{
		collection: db.Collection("config"),
	}
}

func (r *configRepo) GetActive(ctx context.Context) (*model.ExperienceConfig, error) {
	var cfg model.ExperienceConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": activeConfigID}).Decode(&cfg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not configured yet
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *configRepo) SaveActive(ctx context.Context, cfg *model.ExperienceConfig) error {
	cfg.ID = activeConfigID
	cfg.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": activeConfigID}, cfg, opts)
	return err
}
