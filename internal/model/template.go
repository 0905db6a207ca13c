package model

// Category is the topical tag of a question template
type Category string

const (
	CategorySleepRecovery    Category = "sleep_recovery"
	CategoryWorkBoundaries   Category = "work_boundaries"
	CategoryStressManagement Category = "stress_management"
	CategoryMoodAwareness    Category = "mood_awareness"
	CategoryEnergyLevels     Category = "energy_levels"
	CategoryPersonalGrowth   Category = "personal_growth"
	CategorySocialConnection Category = "social_connection"
	CategoryGratitude        Category = "gratitude"
	CategoryMindfulness      Category = "mindfulness"
	CategoryPhysicalActivity Category = "physical_activity"
)

// FrequencyType controls how often a template may be re-asked
type FrequencyType string

const (
	FrequencyDaily      FrequencyType = "daily"
	FrequencyWeekly     FrequencyType = "weekly"
	FrequencyBiWeekly   FrequencyType = "biweekly"
	FrequencyContextual FrequencyType = "contextual"
)

// TimeOfDay buckets derived from the wall-clock hour
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// DayType distinguishes weekdays from weekend days
type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
)

// Trigger is an optional contextual predicate on a template. Every
// configured field must hold for the trigger to pass; nil/empty fields
// are skipped.
type Trigger struct {
	// MoodBelow activates when the user's average recent mood is at or
	// below this value (low mood)
	MoodBelow *float64 `json:"moodBelow,omitempty"`
	// StressAbove activates when the user's average recent stress is at
	// or above this value
	StressAbove *float64 `json:"stressAbove,omitempty"`
	// Keywords passes when any entry substring-matches a journal keyword
	Keywords   []string    `json:"keywords,omitempty"`
	TimesOfDay []TimeOfDay `json:"timesOfDay,omitempty"`
	DayTypes   []DayType   `json:"dayTypes,omitempty"`
}

// QuestionTemplate is an immutable catalog entry. Templates are created
// at catalog build time and never mutated afterwards.
type QuestionTemplate struct {
	ID         string        `json:"id"`
	Category   Category      `json:"category"`
	Text       string        `json:"text"`
	Variations []string      `json:"variations,omitempty"`
	Priority   int           `json:"priority"` // 1 = highest, 3 = lowest
	Frequency  FrequencyType `json:"frequency"`
	FocusAreas []string      `json:"focusAreas,omitempty"`
	Trigger    *Trigger      `json:"trigger,omitempty"`
	// Curated marks membership in the smaller rotation pool used by mix mode
	Curated bool `json:"curated,omitempty"`
}

// HasVariations reports whether alternate phrasings exist
func (t *QuestionTemplate) HasVariations() bool {
	return len(t.Variations) > 0
}
