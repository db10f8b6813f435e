package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sugarsense/internal/model"
)

type InsightRepo interface {
	Get(ctx context.Context, language string) (*model.InsightReport, error)
	Save(ctx context.Context, report *model.InsightReport) error
}

type insightRepo struct {
	collection *mongo.Collection
}

func NewInsightRepo(db *mongo.Database) InsightRepo {
	return &insightRepo{
		collection: db.Collection("insights"),
	}
}

func (r *insightRepo) Get(ctx context.Context, language string) (*model.InsightReport, error) {
	var report model.InsightReport
	err := r.collection.FindOne(ctx, bson.M{"_id": language}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // No report generated yet
		}
		return nil, err
	}
	return &report, nil
}

// Save upserts the report for its language; one document per language.
func (r *insightRepo) Save(ctx context.Context, report *model.InsightReport) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": report.Language}, report, opts)
	return err
}
