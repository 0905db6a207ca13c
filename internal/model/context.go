package model

import "time"

// neverAskedDays stands in for "no response on record" when computing
// elapsed days; it is larger than any frequency or freshness window.
const neverAskedDays = 100000

// AskedInfo summarizes the most recent response to one template
type AskedInfo struct {
	LastAsked time.Time
	Category  Category
	LastScore float64
}

// UserContext is a read-only snapshot of a user's recent signals, built
// fresh per selection call and discarded afterwards. It is never
// persisted by the engine.
type UserContext struct {
	UserID    string
	Now       time.Time
	TimeOfDay TimeOfDay
	DayType   DayType

	// Most-recent-first samples from the check-in window
	MoodScores   []float64
	StressLevels []float64
	EnergyLevels []float64

	// Deduplicated, lower-cased journal keywords
	JournalKeywords []string

	// Focus-area preference tags from the profile
	FocusAreas []string

	// History maps template id to its most recent response
	History map[string]AskedInfo

	// CategoryMeans holds the mean response score per category over the
	// response window; absence means no prior data for that category
	CategoryMeans map[Category]float64

	// RecentCategoryUse counts responses per category over the 14-day
	// balance lookback
	RecentCategoryUse map[Category]int
}

// AvgMood returns the average recent mood score, or def when no samples exist
func (c *UserContext) AvgMood(def float64) float64 {
	return avgOr(c.MoodScores, def)
}

// AvgStress returns the average recent stress level, or def when no samples exist
func (c *UserContext) AvgStress(def float64) float64 {
	return avgOr(c.StressLevels, def)
}

// DaysSinceAsked returns whole days elapsed since the template was last
// asked, or a value beyond every window when it never was.
func (c *UserContext) DaysSinceAsked(templateID string) int {
	info, ok := c.History[templateID]
	if !ok || info.LastAsked.IsZero() {
		return neverAskedDays
	}
	d := c.Now.Sub(info.LastAsked)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// HasFocusArea reports whether the tag is one of the user's focus areas
func (c *UserContext) HasFocusArea(tag string) bool {
	for _, fa := range c.FocusAreas {
		if fa == tag {
			return true
		}
	}
	return false
}

func avgOr(vals []float64, def float64) float64 {
	if len(vals) == 0 {
		return def
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// TimeOfDayFor buckets a wall-clock instant
func TimeOfDayFor(now time.Time) TimeOfDay {
	switch h := now.Hour(); {
	case h < 12:
		return Morning
	case h < 17:
		return Afternoon
	default:
		return Evening
	}
}

// DayTypeFor classifies a wall-clock instant as weekday or weekend
func DayTypeFor(now time.Time) DayType {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}
