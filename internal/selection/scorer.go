package selection

import (
	"sort"
	"time"

	"pulsecheck/internal/model"
)

// Relevance weights. Scores are only compared within a single call, so
// no normalization is needed.
const (
	priorityStep = 10.0

	timeOfDayBonus = 12.0
	dayOfWeekBonus = 10.0

	focusAreaWeight = 15.0

	unexploredBonus    = 8.0
	strugglingBoost    = 20.0
	wellManagedPenalty = -8.0
	strugglingBelow    = 3.0
	wellManagedAbove   = 4.0

	freshnessModerate = 10.0 // 7-14 days since asked
	freshnessLarge    = 20.0 // beyond 14 days or never asked
)

// Categories that fit particular times of day
var morningCategories = map[model.Category]bool{
	model.CategorySleepRecovery: true,
	model.CategoryEnergyLevels:  true,
}

var eveningCategories = map[model.Category]bool{
	model.CategoryStressManagement: true,
	model.CategoryMindfulness:      true,
}

// Categories that fit particular days
var firstWeekdayCategories = map[model.Category]bool{
	model.CategoryWorkBoundaries: true,
}

var weekendCategories = map[model.Category]bool{
	model.CategoryPersonalGrowth:   true,
	model.CategorySocialConnection: true,
}

// Score computes the relevance of a template for the given context:
// priority + temporal fit + focus-area overlap + struggling-category
// adjustment + freshness.
func Score(t *model.QuestionTemplate, uctx *model.UserContext) float64 {
	return priorityScore(t) +
		temporalScore(t, uctx) +
		focusAreaScore(t, uctx) +
		categoryHistoryScore(t, uctx) +
		freshnessBonus(uctx.DaysSinceAsked(t.ID))
}

// priorityScore maps priority 1 → 30, 2 → 20, 3 → 10
func priorityScore(t *model.QuestionTemplate) float64 {
	return float64(4-t.Priority) * priorityStep
}

// temporalScore rewards category/time-of-day and category/day pairings
// that are known to land well.
func temporalScore(t *model.QuestionTemplate, uctx *model.UserContext) float64 {
	var s float64
	switch uctx.TimeOfDay {
	case model.Morning:
		if morningCategories[t.Category] {
			s += timeOfDayBonus
		}
	case model.Evening:
		if eveningCategories[t.Category] {
			s += timeOfDayBonus
		}
	}
	if uctx.Now.Weekday() == time.Monday && firstWeekdayCategories[t.Category] {
		s += dayOfWeekBonus
	}
	if uctx.DayType == model.Weekend && weekendCategories[t.Category] {
		s += dayOfWeekBonus
	}
	return s
}

func focusAreaScore(t *model.QuestionTemplate, uctx *model.UserContext) float64 {
	var overlap int
	for _, fa := range t.FocusAreas {
		if uctx.HasFocusArea(fa) {
			overlap++
		}
	}
	return float64(overlap) * focusAreaWeight
}

// categoryHistoryScore re-asks into categories the user struggles with,
// nudges toward unexplored ones, and de-emphasizes those already doing well.
func categoryHistoryScore(t *model.QuestionTemplate, uctx *model.UserContext) float64 {
	mean, ok := uctx.CategoryMeans[t.Category]
	if !ok {
		return unexploredBonus
	}
	if mean < strugglingBelow {
		return strugglingBoost
	}
	if mean > wellManagedAbove {
		return wellManagedPenalty
	}
	return 0
}

func freshnessBonus(daysSinceAsked int) float64 {
	switch {
	case daysSinceAsked < 7:
		return 0
	case daysSinceAsked <= 14:
		return freshnessModerate
	default:
		return freshnessLarge
	}
}

// scoreAll scores every template and sorts by descending score, breaking
// ties by template id ascending so selection is deterministic.
func scoreAll(templates []*model.QuestionTemplate, uctx *model.UserContext) []model.ScoredTemplate {
	scored := make([]model.ScoredTemplate, 0, len(templates))
	for _, t := range templates {
		scored = append(scored, model.ScoredTemplate{Template: t, Score: Score(t, uctx)})
	}
	sortScored(scored)
	return scored
}

func sortScored(scored []model.ScoredTemplate) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Template.ID < scored[j].Template.ID
	})
}
