package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pulsecheck/internal/model"
	"pulsecheck/internal/service"
)

type mockCheckinRepo struct {
	createFn func(ctx context.Context, checkin *model.Checkin) error
}

func (m *mockCheckinRepo) Create(ctx context.Context, checkin *model.Checkin) error {
	if m.createFn != nil {
		return m.createFn(ctx, checkin)
	}
	return nil
}

func (m *mockCheckinRepo) ListRecent(context.Context, string, time.Time) ([]model.Checkin, error) {
	return nil, nil
}

type mockJournalRepo struct {
	createFn func(ctx context.Context, entry *model.JournalEntry) error
}

func (m *mockJournalRepo) Create(ctx context.Context, entry *model.JournalEntry) error {
	if m.createFn != nil {
		return m.createFn(ctx, entry)
	}
	return nil
}

func (m *mockJournalRepo) ListRecent(context.Context, string, time.Time) ([]model.JournalEntry, error) {
	return nil, nil
}

type mockResponseRepo struct {
	createFn func(ctx context.Context, response *model.QuestionResponse) error
}

func (m *mockResponseRepo) Create(ctx context.Context, response *model.QuestionResponse) error {
	if m.createFn != nil {
		return m.createFn(ctx, response)
	}
	return nil
}

func (m *mockResponseRepo) ListRecent(context.Context, string, time.Time) ([]model.QuestionResponse, error) {
	return nil, nil
}

type mockProfileRepo struct {
	setFn func(ctx context.Context, userID string, focusAreas []string) error
}

func (m *mockProfileRepo) Get(context.Context, string) (*model.Profile, error) {
	return nil, nil
}

func (m *mockProfileRepo) SetFocusAreas(ctx context.Context, userID string, focusAreas []string) error {
	if m.setFn != nil {
		return m.setFn(ctx, userID, focusAreas)
	}
	return nil
}

var _ = Describe("CheckinService", func() {
	var (
		checkins  *mockCheckinRepo
		journals  *mockJournalRepo
		responses *mockResponseRepo
		profiles  *mockProfileRepo
		svc       *service.CheckinService
		ctx       context.Context
	)

	BeforeEach(func() {
		checkins = &mockCheckinRepo{}
		journals = &mockJournalRepo{}
		responses = &mockResponseRepo{}
		profiles = &mockProfileRepo{}
		svc = service.NewCheckinService(checkins, journals, responses, profiles, nil, nil, nil)
		ctx = context.Background()
	})

	Describe("RecordCheckin", func() {
		It("stores a valid sample", func() {
			var saved *model.Checkin
			checkins.createFn = func(_ context.Context, c *model.Checkin) error {
				saved = c
				return nil
			}

			err := svc.RecordCheckin(ctx, &model.Checkin{
				UserID: "u1", MoodScore: 3, StressLevel: 4, EnergyLevel: 2,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).NotTo(BeNil())
			Expect(saved.UserID).To(Equal("u1"))
		})

		It("rejects scores outside 1..5", func() {
			err := svc.RecordCheckin(ctx, &model.Checkin{
				UserID: "u1", MoodScore: 0, StressLevel: 3, EnergyLevel: 3,
			})
			Expect(err).To(HaveOccurred())

			err = svc.RecordCheckin(ctx, &model.Checkin{
				UserID: "u1", MoodScore: 3, StressLevel: 6, EnergyLevel: 3,
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a missing user id", func() {
			err := svc.RecordCheckin(ctx, &model.Checkin{MoodScore: 3, StressLevel: 3, EnergyLevel: 3})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RecordJournal", func() {
		It("rejects an entry with no content", func() {
			err := svc.RecordJournal(ctx, &model.JournalEntry{UserID: "u1", Title: "  "})
			Expect(err).To(HaveOccurred())
		})

		It("stores a valid entry", func() {
			err := svc.RecordJournal(ctx, &model.JournalEntry{UserID: "u1", Body: "long day"})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("RecordResponse", func() {
		It("requires a template id", func() {
			err := svc.RecordResponse(ctx, &model.QuestionResponse{UserID: "u1", Score: 3})
			Expect(err).To(HaveOccurred())
		})

		It("stores a valid response", func() {
			err := svc.RecordResponse(ctx, &model.QuestionResponse{
				UserID: "u1", TemplateID: "mood_word", Category: model.CategoryMoodAwareness, Score: 4,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("invalidates the day's cached selections", func() {
			var invalidated []string
			selCache := &mockSelectionCache{
				invalidateFn: func(_ context.Context, userID string, _ time.Time) error {
					invalidated = append(invalidated, userID)
					return nil
				},
			}
			svc = service.NewCheckinService(checkins, journals, responses, profiles, nil, selCache, nil)

			err := svc.RecordResponse(ctx, &model.QuestionResponse{
				UserID: "u1", TemplateID: "mood_word", Category: model.CategoryMoodAwareness, Score: 4,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(invalidated).To(Equal([]string{"u1"}))
		})
	})

	Describe("SetFocusAreas", func() {
		It("forwards the focus areas to the profile repo", func() {
			var saved []string
			profiles.setFn = func(_ context.Context, _ string, focusAreas []string) error {
				saved = focusAreas
				return nil
			}

			err := svc.SetFocusAreas(ctx, "u1", []string{"sleep", "growth"})
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(Equal([]string{"sleep", "growth"}))
		})
	})
})
