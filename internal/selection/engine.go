package selection

import (
	"pulsecheck/internal/catalog"
	"pulsecheck/internal/model"
)

// Engine selects personalized check-in questions from the catalog. It is
// a pure function of (catalog, context): no I/O, no shared mutable state,
// safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine over an immutable catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Select returns up to maxQuestions resolved questions for the context.
// The standard mode runs eligibility → relevance → diversity over the
// full catalog; mix mode runs the weighted rotation over the curated
// pool. Both paths top up from the fallback pool when they under-fill.
// Select never returns an error: maxQuestions <= 0 yields an empty list,
// and a nil context yields the fallback set.
func (e *Engine) Select(uctx *model.UserContext, maxQuestions int, mode model.SelectionMode) []model.ResolvedQuestion {
	if maxQuestions <= 0 {
		return []model.ResolvedQuestion{}
	}
	if uctx == nil {
		return FallbackQuestions(maxQuestions)
	}
	// maxQuestions is caller input; the catalog plus the fallback pool
	// bounds what a request can ever receive, so allocation is bounded
	// too.
	if n := e.catalog.Len() + len(fallbackPool); maxQuestions > n {
		maxQuestions = n
	}

	var picked []model.ScoredTemplate
	if mode == model.ModeMix {
		picked = selectRotation(e.catalog.Curated(), uctx, maxQuestions)
	} else {
		picked = e.selectStandard(uctx, maxQuestions)
	}

	result := make([]model.ResolvedQuestion, 0, maxQuestions)
	for _, s := range picked {
		result = append(result, model.ResolvedQuestion{
			TemplateID: s.Template.ID,
			Category:   s.Template.Category,
			Text:       ResolveText(uctx.UserID, s.Template, uctx.Now),
		})
	}
	return topUp(result, maxQuestions)
}

func (e *Engine) selectStandard(uctx *model.UserContext, max int) []model.ScoredTemplate {
	all := e.catalog.All()
	eligible := make([]*model.QuestionTemplate, 0, len(all))
	for i := range all {
		t := &all[i]
		if Eligible(t, uctx) {
			eligible = append(eligible, t)
		}
	}
	return selectDiverse(scoreAll(eligible, uctx), max)
}
