package selection

import "pulsecheck/internal/model"

// selectDiverse picks up to max templates from a score-sorted slice.
// First pass: the best template of each not-yet-used category, until half
// the slots are filled, for breadth. Second pass: remaining slots by
// descending score under the per-category cap. Final pass: if the cap
// left slots empty, fill them regardless of category, so the cap is only
// exceeded when reaching max is otherwise impossible.
func selectDiverse(scored []model.ScoredTemplate, max int) []model.ScoredTemplate {
	if max <= 0 || len(scored) == 0 {
		return nil
	}

	catCap := categoryCap(max)
	firstPassLimit := (max + 1) / 2

	picked := make([]model.ScoredTemplate, 0, max)
	usedID := make(map[string]bool, max)
	catCount := make(map[model.Category]int)

	take := func(s model.ScoredTemplate) {
		picked = append(picked, s)
		usedID[s.Template.ID] = true
		catCount[s.Template.Category]++
	}

	for _, s := range scored {
		if len(picked) >= firstPassLimit {
			break
		}
		if catCount[s.Template.Category] == 0 {
			take(s)
		}
	}

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

// categoryCap is ceil(max/3), the unified per-category limit shared by
// both selection paths.
func categoryCap(max int) int {
	return (max + 2) / 3
}
