package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/model"
)

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
	SetFocusAreas(ctx context.Context, userID string, focusAreas []string) error
}

type profileRepo struct {
	collection *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("profiles"),
	}
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // no profile yet, caller treats as no preferences
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) SetFocusAreas(ctx context.Context, userID string, focusAreas []string) error {
	update := bson.M{
		"$set": bson.M{
			"focusAreas": focusAreas,
			"updatedAt":  time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update, opts)
	return err
}
