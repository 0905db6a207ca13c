package selection

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode"

	"pulsecheck/internal/model"
)

// Signal windows. Check-ins and journals inform short-term signals;
// responses cover the longer freshness/struggle horizon.
const (
	checkinWindow  = 7 * 24 * time.Hour
	journalWindow  = 7 * 24 * time.Hour
	responseWindow = 30 * 24 * time.Hour

	balanceLookback = 14 * 24 * time.Hour

	maxKeywords = 20
)

// CheckinReader provides recent mood/stress/energy samples
type CheckinReader interface {
	ListRecent(ctx context.Context, userID string, since time.Time) ([]model.Checkin, error)
}

// JournalReader provides recent journal entries
type JournalReader interface {
	ListRecent(ctx context.Context, userID string, since time.Time) ([]model.JournalEntry, error)
}

// ResponseReader provides recent question responses
type ResponseReader interface {
	ListRecent(ctx context.Context, userID string, since time.Time) ([]model.QuestionResponse, error)
}

// ProfileReader provides the user's focus-area preferences
type ProfileReader interface {
	Get(ctx context.Context, userID string) (*model.Profile, error)
}

// Builder assembles a UserContext snapshot from the collaborator store.
// It performs reads only; nothing is persisted.
type Builder struct {
	checkins  CheckinReader
	journals  JournalReader
	responses ResponseReader
	profiles  ProfileReader
}

// NewBuilder creates a context builder over the given readers
func NewBuilder(checkins CheckinReader, journals JournalReader, responses ResponseReader, profiles ProfileReader) *Builder {
	return &Builder{
		checkins:  checkins,
		journals:  journals,
		responses: responses,
		profiles:  profiles,
	}
}

// Build gathers the user's recent signals into a UserContext. The four
// sub-reads run concurrently; each one that fails degrades to a neutral
// default for its portion of the context. Build returns an error only
// when every sub-read fails, since there is no signal left to select on.
func (b *Builder) Build(ctx context.Context, userID string, now time.Time) (*model.UserContext, error) {
	var (
		checkins    []model.Checkin
		entries     []model.JournalEntry
		responses   []model.QuestionResponse
		profile     *model.Profile
		checkinErr  error
		journalErr  error
		responseErr error
		profileErr  error
	)

	done := make(chan struct{}, 4)
	go func() {
		checkins, checkinErr = b.checkins.ListRecent(ctx, userID, now.Add(-checkinWindow))
		done <- struct{}{}
	}()
	go func() {
		entries, journalErr = b.journals.ListRecent(ctx, userID, now.Add(-journalWindow))
		done <- struct{}{}
	}()
	go func() {
		responses, responseErr = b.responses.ListRecent(ctx, userID, now.Add(-responseWindow))
		done <- struct{}{}
	}()
	go func() {
		profile, profileErr = b.profiles.Get(ctx, userID)
		done <- struct{}{}
	}()
	for i := 0; i < 4; i++ {
		<-done
	}

	if checkinErr != nil && journalErr != nil && responseErr != nil && profileErr != nil {
		return nil, fmt.Errorf("building context for user %s: all store reads failed: %w", userID, checkinErr)
	}
	for _, e := range []struct {
		name string
		err  error
	}{
		{"checkins", checkinErr},
		{"journals", journalErr},
		{"responses", responseErr},
		{"profile", profileErr},
	} {
		if e.err != nil {
			slog.Warn("context sub-read failed, using defaults", "user_id", userID, "read", e.name, "error", e.err)
		}
	}

	uctx := &model.UserContext{
		UserID:            userID,
		Now:               now,
		TimeOfDay:         model.TimeOfDayFor(now),
		DayType:           model.DayTypeFor(now),
		JournalKeywords:   extractKeywords(entries),
		History:           make(map[string]model.AskedInfo, len(responses)),
		CategoryMeans:     make(map[model.Category]float64),
		RecentCategoryUse: make(map[model.Category]int),
	}

	if profile != nil {
		uctx.FocusAreas = profile.FocusAreas
	}

	// Check-ins arrive most-recent-first from the repository; keep that order.
	for _, c := range checkins {
		uctx.MoodScores = append(uctx.MoodScores, c.MoodScore)
		uctx.StressLevels = append(uctx.StressLevels, c.StressLevel)
		uctx.EnergyLevels = append(uctx.EnergyLevels, c.EnergyLevel)
	}

	sums := make(map[model.Category]float64)
	counts := make(map[model.Category]int)
	balanceCutoff := now.Add(-balanceLookback)
	for _, r := range responses {
		info, seen := uctx.History[r.TemplateID]
		if !seen || r.CreatedAt.After(info.LastAsked) {
			uctx.History[r.TemplateID] = model.AskedInfo{
				LastAsked: r.CreatedAt,
				Category:  r.Category,
				LastScore: r.Score,
			}
		}
		sums[r.Category] += r.Score
		counts[r.Category]++
		if r.CreatedAt.After(balanceCutoff) {
			uctx.RecentCategoryUse[r.Category]++
		}
	}
	for cat, n := range counts {
		uctx.CategoryMeans[cat] = sums[cat] / float64(n)
	}

	return uctx, nil
}

var stopWords = map[string]bool{
	"about": true, "after": true, "again": true, "been": true, "before": true,
	"being": true, "could": true, "really": true, "should": true, "their": true,
	"there": true, "these": true, "thing": true, "things": true, "think": true,
	"this": true, "today": true, "very": true, "want": true, "week": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "will": true, "with": true, "would": true, "your": true,
	"have": true, "just": true, "like": true, "more": true, "much": true,
	"some": true, "that": true, "them": true, "then": true, "they": true,
	"from": true, "into": true, "over": true, "also": true, "because": true,
}

// extractKeywords pulls the most salient tokens from recent journal
// entries: lower-cased, punctuation stripped, stop-words and short tokens
// dropped, capped to maxKeywords by frequency then first appearance.
// Entries are expected most-recent-first, so ties favor recent words.
func extractKeywords(entries []model.JournalEntry) []string {
	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	add := func(text string) {
		tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		for _, tok := range tokens {
			if len(tok) <= 3 || stopWords[tok] {
				continue
			}
			if _, ok := freq[tok]; !ok {
				firstSeen[tok] = order
				order++
			}
			freq[tok]++
		}
	}

	for _, e := range entries {
		add(e.Title)
		add(e.Body)
		for _, tag := range e.Tags {
			add(tag)
		}
	}

	keywords := make([]string, 0, len(freq))
	for k := range freq {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if freq[keywords[i]] != freq[keywords[j]] {
			return freq[keywords[i]] > freq[keywords[j]]
		}
		return firstSeen[keywords[i]] < firstSeen[keywords[j]]
	})
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
