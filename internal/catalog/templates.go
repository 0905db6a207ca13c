package catalog

import "pulsecheck/internal/model"

func threshold(v float64) *float64 { return &v }

// Default builds the built-in question catalog. Content edits happen
// here; there is no runtime mutation path.
func Default() (*Catalog, error) {
	return New(defaultTemplates())
}

func defaultTemplates() []model.QuestionTemplate {
	return []model.QuestionTemplate{
		// sleep & recovery
		{
			ID:       "sleep_quality",
			Category: model.CategorySleepRecovery,
			Text:     "How rested do you feel after last night's sleep?",
			Variations: []string{
				"Did you wake up feeling refreshed today?",
				"How would you rate the quality of your sleep last night?",
			},
			Priority:   1,
			Frequency:  model.FrequencyDaily,
			FocusAreas: []string{"sleep", "recovery"},
			Curated:    true,
		},
		{
			ID:       "wind_down_routine",
			Category: model.CategorySleepRecovery,
			Text:     "What helped you wind down before bed this week?",
			Variations: []string{
				"Have you had time to switch off in the evenings lately?",
			},
			Priority:   2,
			Frequency:  model.FrequencyWeekly,
			FocusAreas: []string{"sleep", "recovery"},
		},
		{
			ID:       "tiredness_pattern",
			Category: model.CategorySleepRecovery,
			Text:     "You've mentioned feeling tired. Is anything getting in the way of your rest?",
			Priority:  2,
			Frequency: model.FrequencyContextual,
			Trigger: &model.Trigger{
				Keywords: []string{"tired", "sleep", "exhausted", "insomnia"},
			},
			FocusAreas: []string{"sleep"},
		},

		// work boundaries
		{
			ID:       "work_switch_off",
			Category: model.CategoryWorkBoundaries,
			Text:     "Were you able to fully switch off from work today?",
			Variations: []string{
				"Did work thoughts follow you into your evening?",
				"How cleanly did you close out your workday?",
			},
			Priority:   2,
			Frequency:  model.FrequencyDaily,
			FocusAreas: []string{"work_life_balance", "stress"},
			Trigger: &model.Trigger{
				TimesOfDay: []model.TimeOfDay{model.Evening},
				DayTypes:   []model.DayType{model.Weekday},
			},
			Curated: true,
		},
		{
			ID:       "workload_pressure",
			Category: model.CategoryWorkBoundaries,
			Text:     "How manageable has your workload felt this week?",
			Variations: []string{
				"Is your current workload sustainable?",
			},
			Priority:   2,
			Frequency:  model.FrequencyWeekly,
			FocusAreas: []string{"work_life_balance"},
			Trigger: &model.Trigger{
				StressAbove: threshold(3),
			},
		},
		{
			ID:       "saying_no",
			Category: model.CategoryWorkBoundaries,
			Text:     "Have you said no to anything this week to protect your time?",
			Priority:  3,
			Frequency: model.FrequencyBiWeekly,
			FocusAreas: []string{
				"work_life_balance",
			},
		},

		// stress management
		{
			ID:       "stress_level_now",
			Category: model.CategoryStressManagement,
			Text:     "What's weighing on you most right now?",
			Variations: []string{
				"If you could take one thing off your plate, what would it be?",
				"What is the biggest source of pressure in your life today?",
			},
			Priority:   1,
			Frequency:  model.FrequencyDaily,
			FocusAreas: []string{"stress"},
			Trigger: &model.Trigger{
				StressAbove: threshold(3.5),
			},
			Curated: true,
		},
		{
			ID:       "coping_tools",
			Category: model.CategoryStressManagement,
			Text:     "Which coping strategies have actually helped this week?",
			Priority:   2,
			Frequency:  model.FrequencyWeekly,
			FocusAreas: []string{"stress", "mindfulness"},
		},
		{
			ID:       "stress_body_signals",
			Category: model.CategoryStressManagement,
			Text:     "Where do you notice stress showing up in your body?",
			Variations: []string{
				"Any tension, headaches, or restlessness you've noticed lately?",
			},
			Priority:  2,
			Frequency: model.FrequencyBiWeekly,
			Trigger: &model.Trigger{
				StressAbove: threshold(4),
			},
			FocusAreas: []string{"stress"},
		},

		// mood awareness
		{
			ID:       "mood_word",
			Category: model.CategoryMoodAwareness,
			Text:     "What one word best describes your mood right now?",
			Variations: []string{
				"If your mood were weather, what would it be today?",
				"How are you feeling, in a sentence or less?",
			},
			Priority:   1,
			Frequency:  model.FrequencyDaily,
			FocusAreas: []string{"mood"},
			Curated:    true,
		},
		{
			ID:       "low_mood_support",
			Category: model.CategoryMoodAwareness,
			Text:     "Things seem heavier lately. What small thing could make today a little easier?",
			Priority:  1,
			Frequency: model.FrequencyContextual,
			Trigger: &model.Trigger{
				MoodBelow: threshold(2.5),
			},
			FocusAreas: []string{"mood"},
			Curated:    true,
		},
		{
			ID:       "mood_shift",
			Category: model.CategoryMoodAwareness,
			Text:     "Did anything noticeably shift your mood today, up or down?",
			Priority:   2,
			Frequency:  model.FrequencyDaily,
			FocusAreas: []string{"mood"},
		},

		// energy levels
		{
			ID:       "morning_energy",
			Category: model.CategoryEnergyLevels,
			Text:     "How much energy are you starting the day with?",
			Variations: []string{
				"Out of a full tank, how much fuel do you have this morning?",
			},
			Priority:  2,
			Frequency: model.FrequencyDaily,
			Trigger: &model.Trigger{
				TimesOfDay: []model.TimeOfDay{model.Morning},
			},
			FocusAreas: []string{"energy", "recovery"},
			Curated:    true,
		},
		{
			ID:       "energy_drains",
			Category: model.CategoryEnergyLevels,
			Text:     "What drained your energy most this week?",
			Variations: []string{
				"Which activities left you depleted recently?",
				"Who or what has been taking more energy than it gives back?",
			},
			Priority:   2,
			Frequency:  model.FrequencyWeekly,
			FocusAreas: []string{"energy"},
		},

		// personal growth
		{
			ID:       "small_win",
			Category: model.CategoryPersonalGrowth,
			Text:     "What's one small win you've had recently?",
			Variations: []string{
				"What went better than expected this week?",
			},
			Priority:   2,
			Frequency:  model.FrequencyWeekly,
			FocusAreas: []string{"growth"},
			Curated:    true,
		},
		{
			ID:       "weekend_reflection",
			Category: model.CategoryPersonalGrowth,
			Text:     "Looking at the past week, what would you do differently?",
			Priority:  3,
			Frequency: model.FrequencyWeekly,
			Trigger: &model.Trigger{
				DayTypes: []model.DayType{model.Weekend},
			},
			FocusAreas: []string{"growth"},
		},
		{
			ID:       "learning_edge",
			Category: model.CategoryPersonalGrowth,
			Text:     "Is there something you're curious to learn or try next?",
			Priority:   3,
			Frequency:  model.FrequencyBiWeekly,
			FocusAreas: []string{"growth"},
		},

		// social connection
		{
			ID:       "meaningful_contact",
			Category: model.CategorySocialConnection,
			Text:     "When did you last have a conversation that left you feeling good?",
			Variations: []string{
				"Have you connected with someone who matters to you this week?",
			},
			Priority:   2,
			Frequency:  model.FrequencyWeekly,
			FocusAreas: []string{"relationships"},
			Curated:    true,
		},
		{
			ID:       "loneliness_check",
			Category: model.CategorySocialConnection,
			Text:     "Have you been feeling more alone than you'd like lately?",
			Priority:  2,
			Frequency: model.FrequencyContextual,
			Trigger: &model.Trigger{
				MoodBelow: threshold(3),
				Keywords:  []string{"alone", "lonely", "isolated", "miss"},
			},
			FocusAreas: []string{"relationships", "mood"},
		},

		// gratitude
		{
			ID:       "gratitude_moment",
			Category: model.CategoryGratitude,
			Text:     "What's one thing you're grateful for today?",
			Variations: []string{
				"What made you smile today, however small?",
				"Name something good that happened in the last 24 hours.",
			},
			Priority:   2,
			Frequency:  model.FrequencyDaily,
			FocusAreas: []string{"gratitude", "mood"},
			Curated:    true,
		},
		{
			ID:       "gratitude_person",
			Category: model.CategoryGratitude,
			Text:     "Who has made a positive difference in your week?",
			Priority:   3,
			Frequency:  model.FrequencyWeekly,
			FocusAreas: []string{"gratitude", "relationships"},
		},

		// mindfulness
		{
			ID:       "present_moment",
			Category: model.CategoryMindfulness,
			Text:     "Have you had any moments today where you felt fully present?",
			Variations: []string{
				"Did you get a real pause today, even a short one?",
			},
			Priority:  2,
			Frequency: model.FrequencyDaily,
			Trigger: &model.Trigger{
				TimesOfDay: []model.TimeOfDay{model.Evening},
			},
			FocusAreas: []string{"mindfulness"},
		},
		{
			ID:       "racing_thoughts",
			Category: model.CategoryMindfulness,
			Text:     "Your mind seems busy lately. What keeps pulling your attention?",
			Priority:  2,
			Frequency: model.FrequencyContextual,
			Trigger: &model.Trigger{
				StressAbove: threshold(3.5),
				Keywords:    []string{"overwhelmed", "racing", "anxious", "worry"},
			},
			FocusAreas: []string{"mindfulness", "stress"},
		},

		// physical activity
		{
			ID:       "movement_today",
			Category: model.CategoryPhysicalActivity,
			Text:     "Did you get a chance to move your body today?",
			Variations: []string{
				"Any walks, stretches, or workouts today?",
			},
			Priority:   3,
			Frequency:  model.FrequencyDaily,
			FocusAreas: []string{"fitness", "energy"},
		},
		{
			ID:       "activity_enjoyment",
			Category: model.CategoryPhysicalActivity,
			Text:     "Which kind of movement has felt good lately, if any?",
			Priority:   3,
			Frequency:  model.FrequencyBiWeekly,
			FocusAreas: []string{"fitness"},
		},
	}
}
