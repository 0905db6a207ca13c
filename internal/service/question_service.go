package service

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/model"
	"pulsecheck/internal/selection"
)

// contextMemoTTL absorbs bursts of selection calls for the same user
// without re-reading the store; the redis SelectionCache handles the
// longer day-scale reuse.
const contextMemoTTL = 30 * time.Second

// QuestionService is the selection entry point for the transport layer.
// SelectQuestions never returns an error: every internal failure resolves
// through the fallback pool.
type QuestionService struct {
	builder  *selection.Builder
	engine   *selection.Engine
	selCache cache.SelectionCache
	contexts *gocache.Cache
}

// NewQuestionService creates a new question service
func NewQuestionService(builder *selection.Builder, engine *selection.Engine, selCache cache.SelectionCache) *QuestionService {
	return &QuestionService{
		builder:  builder,
		engine:   engine,
		selCache: selCache,
		contexts: gocache.New(contextMemoTTL, time.Minute),
	}
}

// BuildContext assembles the user's signal snapshot, memoized briefly
// in-process
func (s *QuestionService) BuildContext(ctx context.Context, userID string, now time.Time) (*model.UserContext, error) {
	if memo, ok := s.contexts.Get(userID); ok {
		return memo.(*model.UserContext), nil
	}
	uctx, err := s.builder.Build(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	s.contexts.Set(userID, uctx, gocache.DefaultExpiration)
	return uctx, nil
}

// ForgetContext drops the user's memoized context so the next selection
// rebuilds from the store. Called by the write path after a check-in,
// journal entry, response or preference change lands.
func (s *QuestionService) ForgetContext(userID string) {
	s.contexts.Delete(userID)
}

// SelectQuestions returns up to maxQuestions personalized questions for
// the user. Cache lookups and store failures degrade; the worst case is
// the static fallback set.
func (s *QuestionService) SelectQuestions(ctx context.Context, userID string, maxQuestions int, mode model.SelectionMode) []model.ResolvedQuestion {
	if maxQuestions <= 0 {
		return []model.ResolvedQuestion{}
	}

	now := time.Now()

	if s.selCache != nil {
		cached, err := s.selCache.Get(ctx, userID, now, mode, maxQuestions)
		if err != nil {
			slog.Warn("selection cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached
		}
	}

	uctx, err := s.BuildContext(ctx, userID, now)
	if err != nil {
		slog.Error("context build failed, serving fallback questions", "user_id", userID, "error", err)
		return selection.FallbackQuestions(maxQuestions)
	}

	questions := s.engine.Select(uctx, maxQuestions, mode)

	if s.selCache != nil {
		if err := s.selCache.Set(ctx, userID, now, mode, maxQuestions, questions); err != nil {
			slog.Warn("selection cache write failed", "user_id", userID, "error", err)
		}
	}
	return questions
}
