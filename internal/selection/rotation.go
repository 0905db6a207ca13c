package selection

import "pulsecheck/internal/model"

// Composite weights for the rotation strategy
const (
	weightFreshness = 0.4
	weightRelevance = 0.3
	weightBalance   = 0.2
	weightTiming    = 0.1

	highStress = 4.0
)

// Core wellness categories; mix mode guarantees one of these leads the set
var coreWellnessCategories = map[model.Category]bool{
	model.CategoryMoodAwareness: true,
	model.CategoryEnergyLevels:  true,
}

var stressRelatedCategories = map[model.Category]bool{
	model.CategoryStressManagement: true,
	model.CategoryWorkBoundaries:   true,
}

var energyTypeCategories = map[model.Category]bool{
	model.CategoryEnergyLevels:     true,
	model.CategoryPhysicalActivity: true,
}

var stressMoodCategories = map[model.Category]bool{
	model.CategoryStressManagement: true,
	model.CategoryMoodAwareness:    true,
}

// rotationScore is the weighted composite used by mix mode. Each
// sub-score lands in [0, 1].
func rotationScore(t *model.QuestionTemplate, uctx *model.UserContext) float64 {
	return rotationFreshness(uctx.DaysSinceAsked(t.ID))*weightFreshness +
		rotationRelevance(t, uctx)*weightRelevance +
		rotationBalance(t.Category, uctx)*weightBalance +
		rotationTiming(t.Category, uctx.TimeOfDay)*weightTiming
}

// rotationFreshness saturates after a week without asking
func rotationFreshness(daysSinceAsked int) float64 {
	f := float64(daysSinceAsked) / 7
	if f > 1 {
		return 1
	}
	return f
}

func rotationRelevance(t *model.QuestionTemplate, uctx *model.UserContext) float64 {
	s := 0.5
	if categoryInFocus(t, uctx) {
		s += 0.3
	}
	if stressRelatedCategories[t.Category] && uctx.AvgStress(0) >= highStress {
		s += 0.2
	}
	return s
}

func categoryInFocus(t *model.QuestionTemplate, uctx *model.UserContext) bool {
	if uctx.HasFocusArea(string(t.Category)) {
		return true
	}
	for _, fa := range t.FocusAreas {
		if uctx.HasFocusArea(fa) {
			return true
		}
	}
	return false
}

// rotationBalance pushes down categories the user has answered often in
// the last two weeks, floored at 0.1 so nothing is starved forever.
func rotationBalance(cat model.Category, uctx *model.UserContext) float64 {
	b := 1 - float64(uctx.RecentCategoryUse[cat])*0.2
	if b < 0.1 {
		return 0.1
	}
	return b
}

func rotationTiming(cat model.Category, tod model.TimeOfDay) float64 {
	s := 0.5
	if tod == model.Morning && energyTypeCategories[cat] {
		s += 0.3
	}
	if tod == model.Evening && stressMoodCategories[cat] {
		s += 0.2
	}
	return s
}

// selectRotation runs the mix-mode path over the curated pool: templates
// whose frequency window has elapsed are composite-scored, one core
// wellness question is guaranteed first, and remaining slots fill by
// descending score under the shared per-category cap.
func selectRotation(pool []model.QuestionTemplate, uctx *model.UserContext, max int) []model.ScoredTemplate {
	if max <= 0 {
		return nil
	}

	scored := make([]model.ScoredTemplate, 0, len(pool))
	for i := range pool {
		t := &pool[i]
		if !frequencyElapsed(t, uctx) {
			continue
		}
		scored = append(scored, model.ScoredTemplate{Template: t, Score: rotationScore(t, uctx)})
	}
	sortScored(scored)

	picked := make([]model.ScoredTemplate, 0, max)
	usedID := make(map[string]bool, max)
	catCount := make(map[model.Category]int)

	take := func(s model.ScoredTemplate) {
		picked = append(picked, s)
		usedID[s.Template.ID] = true
		catCount[s.Template.Category]++
	}

	// Lead with the best core wellness question
	for _, s := range scored {
		if coreWellnessCategories[s.Template.Category] {
			take(s)
			break
		}
	}

	catCap := categoryCap(max)
	for _, s := range scored {
		if len(picked) >= max {
			break
		}
		if usedID[s.Template.ID] || catCount[s.Template.Category] >= catCap {
			continue
		}
		take(s)
	}

	for _, s := range scored {
		if len(picked) >= max {
			break
		}
		if usedID[s.Template.ID] {
			continue
		}
		take(s)
	}

	return picked
}
