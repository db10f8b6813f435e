package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sugarsense/internal/model"
)

type ParticipantRepo interface {
	Create(ctx context.Context, participant *model.Participant) error
	GetByID(ctx context.Context, id string) (*model.Participant, error)
	List(ctx context.Context) ([]model.Participant, error)
	UpdateNickname(ctx context.Context, id, nickname string) error
	Count(ctx context.Context) (int64, error)
	PurgeAll(ctx context.Context) (int64, error)
}

type participantRepo struct {
	collection *mongo.Collection
}

func NewParticipantRepo(db *mongo.Database) ParticipantRepo {
	return &participantRepo{
		collection: db.Collection("participants"),
	}
}

func (r *participantRepo) Create(ctx context.Context, participant *model.Participant) error {
	if participant.CreatedAt.IsZero() {
		participant.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, participant)
	return err
}

func (r *participantRepo) GetByID(ctx context.Context, id string) (*model.Participant, error) {
	var participant model.Participant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&participant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Participant not found
		}
		return nil, err
	}
	return &participant, nil
}

// List returns all participant records in completion order. Completion order
// is what the ranking tie-break relies on, so the sort lives here.
func (r *participantRepo) List(ctx context.Context) ([]model.Participant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	participants := []model.Participant{}
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepo) UpdateNickname(ctx context.Context, id, nickname string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"nickname": nickname}},
	)
	return err
}

func (r *participantRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *participantRepo) PurgeAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
