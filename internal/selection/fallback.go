package selection

import "pulsecheck/internal/model"

// fallbackPool is the hard-coded, always-eligible question set used when
// context retrieval fails or the pipeline under-fills.
var fallbackPool = []model.ResolvedQuestion{
	{
		TemplateID: "fallback_mood",
		Category:   model.CategoryMoodAwareness,
		Text:       "How are you feeling right now?",
	},
	{
		TemplateID: "fallback_energy",
		Category:   model.CategoryEnergyLevels,
		Text:       "How is your energy today?",
	},
	{
		TemplateID: "fallback_stress",
		Category:   model.CategoryStressManagement,
		Text:       "Is anything causing you stress at the moment?",
	},
	{
		TemplateID: "fallback_gratitude",
		Category:   model.CategoryGratitude,
		Text:       "What is one thing you appreciated today?",
	},
}

// FallbackQuestions returns the static set truncated to max. It never
// fails and is non-empty for any max >= 1.
func FallbackQuestions(max int) []model.ResolvedQuestion {
	if max <= 0 {
		return []model.ResolvedQuestion{}
	}
	if max > len(fallbackPool) {
		max = len(fallbackPool)
	}
	out := make([]model.ResolvedQuestion, max)
	copy(out, fallbackPool[:max])
	return out
}

// topUp appends unused fallback questions until the result reaches max,
// keeping whatever the pipeline already picked.
func topUp(result []model.ResolvedQuestion, max int) []model.ResolvedQuestion {
	if len(result) >= max {
		return result
	}
	used := make(map[string]bool, len(result))
	for _, q := range result {
		used[q.TemplateID] = true
	}
	for _, fb := range fallbackPool {
		if len(result) >= max {
			break
		}
		if used[fb.TemplateID] {
			continue
		}
		result = append(result, fb)
	}
	return result
}
