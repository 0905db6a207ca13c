package selection

import (
	"strings"

	"pulsecheck/internal/model"
)

// Trigger threshold defaults apply when the user has no recent samples:
// an unknown mood is treated as neutral (3) and so is unknown stress.
const (
	defaultMoodAvg   = 3.0
	defaultStressAvg = 3.0
)

// Eligible reports whether a template may be offered right now. Both the
// frequency window and the trigger predicate must pass.
func Eligible(t *model.QuestionTemplate, uctx *model.UserContext) bool {
	return frequencyElapsed(t, uctx) && triggerSatisfied(t.Trigger, uctx)
}

// frequencyElapsed checks that enough days have passed since the template
// was last asked. A template with no response on record is always clear.
func frequencyElapsed(t *model.QuestionTemplate, uctx *model.UserContext) bool {
	days := uctx.DaysSinceAsked(t.ID)
	switch t.Frequency {
	case model.FrequencyDaily:
		return days >= 1
	case model.FrequencyWeekly:
		return days >= 7
	case model.FrequencyBiWeekly:
		return days >= 14
	case model.FrequencyContextual:
		return true
	default:
		// Unknown frequency types are rejected at catalog load
		return false
	}
}

// triggerSatisfied evaluates the template's trigger predicate against the
// context. All configured sub-conditions are ANDed; a nil trigger passes.
func triggerSatisfied(tr *model.Trigger, uctx *model.UserContext) bool {
	if tr == nil {
		return true
	}
	if tr.MoodBelow != nil && uctx.AvgMood(defaultMoodAvg) > *tr.MoodBelow {
		return false
	}
	if tr.StressAbove != nil && uctx.AvgStress(defaultStressAvg) < *tr.StressAbove {
		return false
	}
	if len(tr.Keywords) > 0 && !keywordOverlap(tr.Keywords, uctx.JournalKeywords) {
		return false
	}
	if len(tr.TimesOfDay) > 0 && !containsTime(tr.TimesOfDay, uctx.TimeOfDay) {
		return false
	}
	if len(tr.DayTypes) > 0 && !containsDay(tr.DayTypes, uctx.DayType) {
		return false
	}
	return true
}

// keywordOverlap passes when any trigger keyword is a substring of any
// journal keyword, so "tired" also matches "tiredness".
func keywordOverlap(triggerWords, contextWords []string) bool {
	for _, tw := range triggerWords {
		for _, cw := range contextWords {
			if strings.Contains(cw, tw) {
				return true
			}
		}
	}
	return false
}

func containsTime(set []model.TimeOfDay, v model.TimeOfDay) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsDay(set []model.DayType, v model.DayType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
