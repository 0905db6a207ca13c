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

type JournalRepo interface {
	Create(ctx context.Context, entry *model.JournalEntry) error
	ListRecent(ctx context.Context, userID string, since time.Time) ([]model.JournalEntry, error)
}

type journalRepo struct {
	collection *mongo.Collection
}

func NewJournalRepo(db *mongo.Database) JournalRepo {
	return &journalRepo{
		collection: db.Collection("journals"),
	}
}

func (r *journalRepo) Create(ctx context.Context, entry *model.JournalEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.ID == "" {
		entry.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// ListRecent returns journal entries inside the window, most recent first
func (r *journalRepo) ListRecent(ctx context.Context, userID string, since time.Time) ([]model.JournalEntry, error) {
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

	var entries []model.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
