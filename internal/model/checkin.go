package model

import "time"

// Checkin is one mood/stress/energy sample recorded by the user.
// Scores are on a 1-5 scale.
type Checkin struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"userId" bson:"userId"`
	MoodScore   float64   `json:"moodScore" bson:"moodScore"`
	StressLevel float64   `json:"stressLevel" bson:"stressLevel"`
	EnergyLevel float64   `json:"energyLevel" bson:"energyLevel"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// JournalEntry is a free-text journal record
type JournalEntry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"userId"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// QuestionResponse records that a template was asked and how the user
// scored it (1-5)
type QuestionResponse struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"userId" bson:"userId"`
	TemplateID string    `json:"templateId" bson:"templateId"`
	Category   Category  `json:"category" bson:"category"`
	Score      float64   `json:"score" bson:"score"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// Profile holds the user-level preferences the engine reads
type Profile struct {
	UserID     string    `json:"userId" bson:"_id"`
	FocusAreas []string  `json:"focusAreas" bson:"focusAreas"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
