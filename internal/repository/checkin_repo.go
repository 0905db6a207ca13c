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

type CheckinRepo interface {
	Create(ctx context.Context, checkin *model.Checkin) error
	ListRecent(ctx context.Context, userID string, since time.Time) ([]model.Checkin, error)
}

type checkinRepo struct {
	collection *mongo.Collection
}

func NewCheckinRepo(db *mongo.Database) CheckinRepo {
	return &checkinRepo{
		collection: db.Collection("checkins"),
	}
}

func (r *checkinRepo) Create(ctx context.Context, checkin *model.Checkin) error {
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = time.Now()
	}
	if checkin.ID == "" {
		checkin.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, checkin)
	return err
}

// ListRecent returns the user's check-ins inside the window, most recent first
func (r *checkinRepo) ListRecent(ctx context.Context, userID string, since time.Time) ([]model.Checkin, error) {
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

	var checkins []model.Checkin
	if err := cursor.All(ctx, &checkins); err != nil {
		return nil, err
	}
	return checkins, nil
}
