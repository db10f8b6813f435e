package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sugarsense/internal/config"
	"sugarsense/internal/model"
)

// Seeds the reference foods and the active experience configuration.
// °Brix values come from refractometer readings of typical samples.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	foods := []model.Food{
		{ID: "carota", NameIT: "Carota", NameEN: "Carrot", Emoji: "🥕", SugarG: 4.7, PortionG: 100, Brix: 8.0, Category: model.CategoryVegetable, OrderPosition: 0},
		{ID: "pomodoro", NameIT: "Pomodoro", NameEN: "Tomato", Emoji: "🍅", SugarG: 2.6, PortionG: 100, Brix: 4.5, Category: model.CategoryVegetable, OrderPosition: 1},
		{ID: "mela", NameIT: "Mela", NameEN: "Apple", Emoji: "🍎", SugarG: 10.4, PortionG: 100, Brix: 12.5, Category: model.CategoryFruit, OrderPosition: 2},
		{ID: "fragola", NameIT: "Fragola", NameEN: "Strawberry", Emoji: "🍓", SugarG: 4.9, PortionG: 100, Brix: 7.5, Category: model.CategoryFruit, OrderPosition: 3},
		{ID: "zucchina", NameIT: "Zucchina", NameEN: "Zucchini", Emoji: "🥒", SugarG: 1.7, PortionG: 100, Brix: 3.0, Category: model.CategoryVegetable, OrderPosition: 4},
		{ID: "uva", NameIT: "Uva", NameEN: "Grape", Emoji: "🍇", SugarG: 15.5, PortionG: 100, Brix: 17.0, Category: model.CategoryFruit, OrderPosition: 5},
		{ID: "acqua", NameIT: "Acqua", NameEN: "Water", Emoji: "💧", SugarG: 0, PortionG: 100, Brix: 0.0, IsReference: true, Category: model.CategoryVegetable, OrderPosition: 6},
	}

	foodColl := db.Collection("foods")
	for _, food := range foods {
		opts := options.Replace().SetUpsert(true)
		if _, err := foodColl.ReplaceOne(ctx, bson.M{"_id": food.ID}, food, opts); err != nil {
			log.Fatalf("Failed to seed food %s: %v", food.ID, err)
		}
	}
	fmt.Printf("Seeded %d foods\n", len(foods))

	experienceCfg := model.ExperienceConfig{
		ID: "active",
		Pairs: []model.ComparisonPair{
			{FoodAID: "carota", FoodBID: "pomodoro", OrderPosition: 0},
			{FoodAID: "mela", FoodBID: "fragola", OrderPosition: 1},
			{FoodAID: "zucchina", FoodBID: "uva", OrderPosition: 2},
			{FoodAID: "carota", FoodBID: "fragola", OrderPosition: 3},
		},
		PairThreshold: 0.5,
		UpdatedAt:     time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := db.Collection("config").ReplaceOne(ctx, bson.M{"_id": experienceCfg.ID}, experienceCfg, opts); err != nil {
		log.Fatalf("Failed to seed config: %v", err)
	}
	fmt.Printf("Seeded active config with %d pairs\n", len(experienceCfg.Pairs))
}
