package selection

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pulsecheck/internal/catalog"
	"pulsecheck/internal/model"
)

func mustCatalog(templates ...model.QuestionTemplate) *catalog.Catalog {
	c, err := catalog.New(templates)
	Expect(err).NotTo(HaveOccurred())
	return c
}

func plainTemplate(id string, cat model.Category, priority int) model.QuestionTemplate {
	return model.QuestionTemplate{
		ID:        id,
		Category:  cat,
		Text:      "question " + id,
		Priority:  priority,
		Frequency: model.FrequencyDaily,
	}
}

var _ = Describe("Engine.Select", func() {
	It("returns an empty list for maxQuestions <= 0", func() {
		engine := NewEngine(mustCatalog(plainTemplate("a", model.CategoryGratitude, 1)))
		Expect(engine.Select(testContext(nil), 0, model.ModeStandard)).To(BeEmpty())
		Expect(engine.Select(testContext(nil), -2, model.ModeStandard)).To(BeEmpty())
	})

	It("serves the fallback set for a nil context", func() {
		engine := NewEngine(mustCatalog(plainTemplate("a", model.CategoryGratitude, 1)))
		result := engine.Select(nil, 2, model.ModeStandard)
		Expect(result).To(HaveLen(2))
		Expect(result[0].TemplateID).To(Equal("fallback_mood"))
	})

	It("bounds maxQuestions by what the catalog and fallback pool can fill", func() {
		engine := NewEngine(mustCatalog(
			plainTemplate("a", model.CategoryGratitude, 1),
			plainTemplate("b", model.CategoryMindfulness, 1),
		))

		result := engine.Select(testContext(nil), 1<<30, model.ModeStandard)
		Expect(result).NotTo(BeEmpty())
		Expect(len(result)).To(BeNumerically("<=", 6))

		seen := map[string]bool{}
		for _, q := range result {
			Expect(seen[q.TemplateID]).To(BeFalse(), "duplicate id %s", q.TemplateID)
			seen[q.TemplateID] = true
		}
	})

	It("never returns more than maxQuestions", func() {
		engine := NewEngine(mustCatalog(
			plainTemplate("a", model.CategoryGratitude, 1),
			plainTemplate("b", model.CategoryMindfulness, 1),
			plainTemplate("c", model.CategoryEnergyLevels, 1),
			plainTemplate("d", model.CategorySleepRecovery, 1),
		))
		Expect(engine.Select(testContext(nil), 2, model.ModeStandard)).To(HaveLen(2))
	})

	It("excludes daily templates asked less than a day ago", func() {
		engine := NewEngine(mustCatalog(
			plainTemplate("asked_today", model.CategoryGratitude, 1),
			plainTemplate("other", model.CategoryMindfulness, 3),
		))
		uctx := testContext(func(c *model.UserContext) {
			askedDaysAgo(c, "asked_today", model.CategoryGratitude, 0, 3)
		})

		result := engine.Select(uctx, 2, model.ModeStandard)
		for _, q := range result {
			Expect(q.TemplateID).NotTo(Equal("asked_today"))
		}
	})

	It("tops up from the fallback pool when the pipeline under-fills", func() {
		engine := NewEngine(mustCatalog(plainTemplate("only", model.CategoryGratitude, 1)))

		result := engine.Select(testContext(nil), 3, model.ModeStandard)
		Expect(result).To(HaveLen(3))
		Expect(result[0].TemplateID).To(Equal("only"))

		seen := map[string]bool{}
		for _, q := range result {
			Expect(seen[q.TemplateID]).To(BeFalse(), "duplicate id %s", q.TemplateID)
			seen[q.TemplateID] = true
		}
	})

	Describe("diversity", func() {
		It("covers at least three categories in the first picks when available", func() {
			engine := NewEngine(mustCatalog(
				plainTemplate("a1", model.CategoryGratitude, 1),
				plainTemplate("a2", model.CategoryGratitude, 1),
				plainTemplate("b1", model.CategoryMindfulness, 1),
				plainTemplate("b2", model.CategoryMindfulness, 1),
				plainTemplate("c1", model.CategoryEnergyLevels, 2),
				plainTemplate("d1", model.CategorySocialConnection, 2),
			))

			result := engine.Select(testContext(func(c *model.UserContext) {
				c.TimeOfDay = model.Afternoon
			}), 6, model.ModeStandard)
			Expect(len(result)).To(BeNumerically(">=", 3))

			firstThree := map[model.Category]bool{}
			for _, q := range result[:3] {
				firstThree[q.Category] = true
			}
			Expect(firstThree).To(HaveLen(3))
		})

		It("keeps categories under the cap unless reaching max is impossible otherwise", func() {
			engine := NewEngine(mustCatalog(
				plainTemplate("a1", model.CategoryGratitude, 1),
				plainTemplate("a2", model.CategoryGratitude, 1),
				plainTemplate("a3", model.CategoryGratitude, 1),
				plainTemplate("b1", model.CategoryMindfulness, 2),
				plainTemplate("b2", model.CategoryMindfulness, 2),
				plainTemplate("c1", model.CategoryEnergyLevels, 3),
				plainTemplate("d1", model.CategorySocialConnection, 2),
				plainTemplate("e1", model.CategoryPersonalGrowth, 2),
			))

			// cap = ceil(6/3) = 2 and enough spread exists: no category
			// should exceed two slots
			result := engine.Select(testContext(func(c *model.UserContext) {
				c.TimeOfDay = model.Afternoon
			}), 6, model.ModeStandard)

			counts := map[model.Category]int{}
			for _, q := range result {
				counts[q.Category]++
			}
			for cat, n := range counts {
				Expect(n).To(BeNumerically("<=", 2), string(cat))
			}
		})
	})

	Describe("the stressed-workweek scenario", func() {
		stress := func(v float64) *float64 { return &v }

		It("surfaces both categories with the work trigger satisfied", func() {
			workTrigger := &model.Trigger{StressAbove: stress(3)}
			s1 := plainTemplate("sleep_1", model.CategorySleepRecovery, 1)
			s2 := plainTemplate("sleep_2", model.CategorySleepRecovery, 1)
			w1 := plainTemplate("work_1", model.CategoryWorkBoundaries, 2)
			w2 := plainTemplate("work_2", model.CategoryWorkBoundaries, 2)
			w1.Frequency = model.FrequencyWeekly
			w2.Frequency = model.FrequencyWeekly
			w1.Trigger = workTrigger
			w2.Trigger = workTrigger

			engine := NewEngine(mustCatalog(s1, s2, w1, w2))

			uctx := testContext(func(c *model.UserContext) {
				c.StressLevels = []float64{4, 4, 4}
				for _, t := range []model.QuestionTemplate{s1, s2, w1, w2} {
					askedDaysAgo(c, t.ID, t.Category, 10, 3)
				}
			})

			result := engine.Select(uctx, 3, model.ModeStandard)
			Expect(result).To(HaveLen(3))

			cats := map[model.Category]int{}
			for _, q := range result {
				cats[q.Category]++
			}
			Expect(cats[model.CategorySleepRecovery]).To(BeNumerically(">=", 1))
			Expect(cats[model.CategoryWorkBoundaries]).To(BeNumerically(">=", 1))

			// Higher-priority sleep questions outrank the work ones
			Expect(result[0].Category).To(Equal(model.CategorySleepRecovery))
		})
	})

	Describe("default catalog smoke", func() {
		It("fills a full selection from the shipped catalog", func() {
			cat, err := catalog.Default()
			Expect(err).NotTo(HaveOccurred())
			engine := NewEngine(cat)

			result := engine.Select(testContext(nil), 5, model.ModeStandard)
			Expect(result).To(HaveLen(5))
			for _, q := range result {
				Expect(q.Text).NotTo(BeEmpty())
				Expect(q.TemplateID).NotTo(BeEmpty())
			}
		})

		It("fills a mix-mode selection from the curated pool", func() {
			cat, err := catalog.Default()
			Expect(err).NotTo(HaveOccurred())
			engine := NewEngine(cat)

			result := engine.Select(testContext(nil), 4, model.ModeMix)
			Expect(result).To(HaveLen(4))
		})
	})
})
