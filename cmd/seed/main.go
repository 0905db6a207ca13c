package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/catalog"
	"pulsecheck/internal/config"
	"pulsecheck/internal/model"
)

// Seeds two demo users with two weeks of check-ins, journal entries and
// question responses for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	users := []struct {
		id         string
		focusAreas []string
		baseMood   float64
		baseStress float64
	}{
		{id: "demo-ana", focusAreas: []string{"sleep", "stress"}, baseMood: 2.5, baseStress: 4.0},
		{id: "demo-ben", focusAreas: []string{"growth", "fitness"}, baseMood: 4.0, baseStress: 2.0},
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	for _, u := range users {
		if _, err := db.Collection("profiles").UpdateOne(ctx,
			map[string]interface{}{"_id": u.id},
			map[string]interface{}{"$set": model.Profile{
				UserID:     u.id,
				FocusAreas: u.focusAreas,
				UpdatedAt:  now,
			}},
			options.Update().SetUpsert(true),
		); err != nil {
			log.Fatalf("Failed to seed profile %s: %v", u.id, err)
		}

		for day := 1; day <= 14; day++ {
			ts := now.AddDate(0, 0, -day)

			checkin := model.Checkin{
				ID:          uuid.NewString(),
				UserID:      u.id,
				MoodScore:   clamp(u.baseMood + rng.Float64() - 0.5),
				StressLevel: clamp(u.baseStress + rng.Float64() - 0.5),
				EnergyLevel: clamp(3 + rng.Float64() - 0.5),
				CreatedAt:   ts,
			}
			if _, err := db.Collection("checkins").InsertOne(ctx, checkin); err != nil {
				log.Fatalf("Failed to seed checkin: %v", err)
			}

			// A journal entry every third day
			if day%3 == 0 {
				entry := model.JournalEntry{
					ID:        uuid.NewString(),
					UserID:    u.id,
					Title:     "Daily notes",
					Body:      "Feeling tired after another long workday, deadlines keep piling up.",
					Tags:      []string{"work", "sleep"},
					CreatedAt: ts,
				}
				if _, err := db.Collection("journals").InsertOne(ctx, entry); err != nil {
					log.Fatalf("Failed to seed journal entry: %v", err)
				}
			}

			// A couple of question responses per day from the catalog
			templates := cat.All()
			for i := 0; i < 2; i++ {
				tmpl := templates[rng.Intn(len(templates))]
				resp := model.QuestionResponse{
					ID:         uuid.NewString(),
					UserID:     u.id,
					TemplateID: tmpl.ID,
					Category:   tmpl.Category,
					Score:      clamp(u.baseMood + rng.Float64()),
					CreatedAt:  ts.Add(time.Duration(i) * time.Hour),
				}
				if _, err := db.Collection("responses").InsertOne(ctx, resp); err != nil {
					log.Fatalf("Failed to seed response: %v", err)
				}
			}
		}
		log.Printf("Seeded user %s", u.id)
	}

	log.Println("Seed complete")
}

func clamp(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
