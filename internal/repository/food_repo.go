package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sugarsense/internal/model"
)

type FoodRepo interface {
	Create(ctx context.Context, food *model.Food) error
	GetByID(ctx context.Context, id string) (*model.Food, error)
	List(ctx context.Context) ([]model.Food, error)
	Update(ctx context.Context, food *model.Food) error
	Delete(ctx context.Context, id string) error
}

type foodRepo struct {
	collection *mongo.Collection
}

func NewFoodRepo(db *mongo.Database) FoodRepo {
	return &foodRepo{
		collection: db.Collection("foods"),
	}
}

func (r *foodRepo) Create(ctx context.Context, food *model.Food) error {
	// Food ids are referenced by measurement keys, so human-readable slugs
	// are allowed; generate one only when the client didn't provide an id.
	if food.ID == "" {
		food.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, food)
	return err
}

func (r *foodRepo) GetByID(ctx context.Context, id string) (*model.Food, error) {
	var food model.Food
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Food not found
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepo) List(ctx context.Context) ([]model.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderPosition", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	foods := []model.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepo) Update(ctx context.Context, food *model.Food) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": food.ID}, food)
	return err
}

func (r *foodRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
