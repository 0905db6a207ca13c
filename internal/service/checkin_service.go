package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

// CheckinService records the user signals the selection engine later
// reads: check-ins, journal entries, question responses, and focus-area
// preferences. Writes invalidate the day's cached selections so the next
// pick sees fresh signals.
type CheckinService struct {
	checkinRepo  repository.CheckinRepo
	journalRepo  repository.JournalRepo
	responseRepo repository.ResponseRepo
	profileRepo  repository.ProfileRepo
	questionSvc  *QuestionService
	selCache     cache.SelectionCache
	profileCache cache.ProfileCache
}

// NewCheckinService creates a new check-in service
func NewCheckinService(
	checkinRepo repository.CheckinRepo,
	journalRepo repository.JournalRepo,
	responseRepo repository.ResponseRepo,
	profileRepo repository.ProfileRepo,
	questionSvc *QuestionService,
	selCache cache.SelectionCache,
	profileCache cache.ProfileCache,
) *CheckinService {
	return &CheckinService{
		checkinRepo:  checkinRepo,
		journalRepo:  journalRepo,
		responseRepo: responseRepo,
		profileRepo:  profileRepo,
		questionSvc:  questionSvc,
		selCache:     selCache,
		profileCache: profileCache,
	}
}

// RecordCheckin stores one mood/stress/energy sample
func (s *CheckinService) RecordCheckin(ctx context.Context, checkin *model.Checkin) error {
	if checkin.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	for name, v := range map[string]float64{
		"moodScore":   checkin.MoodScore,
		"stressLevel": checkin.StressLevel,
		"energyLevel": checkin.EnergyLevel,
	} {
		if v < 1 || v > 5 {
			return fmt.Errorf("%s must be between 1 and 5", name)
		}
	}
	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		return fmt.Errorf("saving checkin: %w", err)
	}
	s.invalidateSelections(ctx, checkin.UserID)
	return nil
}

// RecordJournal stores a journal entry
func (s *CheckinService) RecordJournal(ctx context.Context, entry *model.JournalEntry) error {
	if entry.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if strings.TrimSpace(entry.Title) == "" && strings.TrimSpace(entry.Body) == "" {
		return fmt.Errorf("entry is empty")
	}
	if err := s.journalRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("saving journal entry: %w", err)
	}
	s.invalidateSelections(ctx, entry.UserID)
	return nil
}

// RecordResponse stores the user's answer to a selected question
func (s *CheckinService) RecordResponse(ctx context.Context, response *model.QuestionResponse) error {
	if response.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if response.TemplateID == "" {
		return fmt.Errorf("templateId is required")
	}
	if response.Score < 1 || response.Score > 5 {
		return fmt.Errorf("score must be between 1 and 5")
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		return fmt.Errorf("saving response: %w", err)
	}
	// A recorded response closes the template's frequency window, so the
	// day's cached selections are stale too.
	s.invalidateSelections(ctx, response.UserID)
	return nil
}

// SetFocusAreas replaces the user's focus-area preferences
func (s *CheckinService) SetFocusAreas(ctx context.Context, userID string, focusAreas []string) error {
	if userID == "" {
		return fmt.Errorf("userId is required")
	}
	if err := s.profileRepo.SetFocusAreas(ctx, userID, focusAreas); err != nil {
		return fmt.Errorf("saving focus areas: %w", err)
	}
	if s.profileCache != nil {
		if err := s.profileCache.Delete(ctx, userID); err != nil {
			slog.Warn("profile cache invalidation failed", "user_id", userID, "error", err)
		}
	}
	s.invalidateSelections(ctx, userID)
	return nil
}

// invalidateSelections drops everything a stale read could come from:
// the question service's in-process context memo and the day's redis
// selections.
func (s *CheckinService) invalidateSelections(ctx context.Context, userID string) {
	if s.questionSvc != nil {
		s.questionSvc.ForgetContext(userID)
	}
	if s.selCache == nil {
		return
	}
	if err := s.selCache.Invalidate(ctx, userID, time.Now()); err != nil {
		slog.Warn("selection cache invalidation failed", "user_id", userID, "error", err)
	}
}
