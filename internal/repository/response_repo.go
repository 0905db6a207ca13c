package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/model"
)

type ResponseRepo interface {
	Create(ctx context.Context, response *model.QuestionResponse) error
	ListRecent(ctx context.Context, userID string, since time.Time) ([]model.QuestionResponse, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, response *model.QuestionResponse) error {
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now()
	}
	if response.ID == "" {
		response.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, response)
	return err
}

// ListRecent returns question responses inside the window, most recent first
func (r *responseRepo) ListRecent(ctx context.Context, userID string, since time.Time) ([]model.QuestionResponse, error) {
	filter := bson.M{
		"userId":    userID,
		"createdAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []model.QuestionResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
