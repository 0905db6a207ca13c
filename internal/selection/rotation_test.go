package selection

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pulsecheck/internal/model"
)

var _ = Describe("RotationStrategy", func() {
	Describe("sub-scores", func() {
		It("saturates freshness after a week", func() {
			Expect(rotationFreshness(0)).To(BeNumerically("==", 0))
			Expect(rotationFreshness(7)).To(BeNumerically("==", 1))
			Expect(rotationFreshness(70)).To(BeNumerically("==", 1))
			Expect(rotationFreshness(3)).To(BeNumerically("~", 3.0/7, 1e-9))
		})

		It("floors balance at 0.1 for heavily used categories", func() {
			uctx := testContext(func(c *model.UserContext) {
				c.RecentCategoryUse[model.CategoryGratitude] = 2
				c.RecentCategoryUse[model.CategoryMindfulness] = 9
			})
			Expect(rotationBalance(model.CategoryEnergyLevels, uctx)).To(BeNumerically("==", 1))
			Expect(rotationBalance(model.CategoryGratitude, uctx)).To(BeNumerically("~", 0.6, 1e-9))
			Expect(rotationBalance(model.CategoryMindfulness, uctx)).To(BeNumerically("==", 0.1))
		})

		It("raises relevance for focus-area and high-stress matches", func() {
			t := &model.QuestionTemplate{
				ID:         "w",
				Category:   model.CategoryWorkBoundaries,
				FocusAreas: []string{"work_life_balance"},
			}
			base := testContext(nil)
			focused := testContext(func(c *model.UserContext) {
				c.FocusAreas = []string{"work_life_balance"}
			})
			stressed := testContext(func(c *model.UserContext) {
				c.StressLevels = []float64{4, 5}
			})

			Expect(rotationRelevance(t, base)).To(BeNumerically("~", 0.5, 1e-9))
			Expect(rotationRelevance(t, focused)).To(BeNumerically("~", 0.8, 1e-9))
			Expect(rotationRelevance(t, stressed)).To(BeNumerically("~", 0.7, 1e-9))
		})

		It("times energy questions to mornings and stress/mood to evenings", func() {
			Expect(rotationTiming(model.CategoryEnergyLevels, model.Morning)).To(BeNumerically("~", 0.8, 1e-9))
			Expect(rotationTiming(model.CategoryEnergyLevels, model.Evening)).To(BeNumerically("~", 0.5, 1e-9))
			Expect(rotationTiming(model.CategoryStressManagement, model.Evening)).To(BeNumerically("~", 0.7, 1e-9))
			Expect(rotationTiming(model.CategoryMoodAwareness, model.Evening)).To(BeNumerically("~", 0.7, 1e-9))
			Expect(rotationTiming(model.CategoryGratitude, model.Afternoon)).To(BeNumerically("~", 0.5, 1e-9))
		})
	})

	Describe("selection", func() {
		pool := []model.QuestionTemplate{
			{ID: "grat", Category: model.CategoryGratitude, Text: "q", Priority: 2, Frequency: model.FrequencyDaily},
			{ID: "mood", Category: model.CategoryMoodAwareness, Text: "q", Priority: 1, Frequency: model.FrequencyDaily},
			{ID: "sleep", Category: model.CategorySleepRecovery, Text: "q", Priority: 1, Frequency: model.FrequencyDaily},
			{ID: "stress", Category: model.CategoryStressManagement, Text: "q", Priority: 1, Frequency: model.FrequencyDaily},
		}

		It("leads with a core wellness question", func() {
			picked := selectRotation(pool, testContext(nil), 3)
			Expect(picked).NotTo(BeEmpty())
			Expect(coreWellnessCategories[picked[0].Template.Category]).To(BeTrue())
		})

		It("respects frequency windows even in mix mode", func() {
			uctx := testContext(func(c *model.UserContext) {
				askedDaysAgo(c, "mood", model.CategoryMoodAwareness, 0, 3)
			})
			picked := selectRotation(pool, uctx, 4)
			for _, s := range picked {
				Expect(s.Template.ID).NotTo(Equal("mood"))
			}
		})

		It("returns no duplicates and at most max", func() {
			picked := selectRotation(pool, testContext(nil), 2)
			Expect(len(picked)).To(BeNumerically("<=", 2))
			seen := map[string]bool{}
			for _, s := range picked {
				Expect(seen[s.Template.ID]).To(BeFalse())
				seen[s.Template.ID] = true
			}
		})

		It("ranks stale questions above recently asked ones", func() {
			uctx := testContext(func(c *model.UserContext) {
				askedDaysAgo(c, "grat", model.CategoryGratitude, 1, 3)
				askedDaysAgo(c, "stress", model.CategoryStressManagement, 10, 3)
			})
			picked := selectRotation(pool, uctx, 4)

			pos := map[string]int{}
			for i, s := range picked {
				pos[s.Template.ID] = i
			}
			Expect(pos).To(HaveKey("stress"))
			Expect(pos).To(HaveKey("grat"))
			Expect(pos["stress"]).To(BeNumerically("<", pos["grat"]))
		})
	})
})
